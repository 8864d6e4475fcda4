package authn

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid jwt token")
var ErrMissingSecret = errors.New("signing secret is not set")

// TokenLifetime is the fixed credential expiry.
const TokenLifetime = time.Hour

// Claims are the JWT claims carried by an issued credential. Email is the
// caller identity checked by the organizer gate.
type Claims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// IssueToken signs a credential for the given email, expiring one hour from
// issuance.
func IssueToken(secret []byte, email string) (string, error) {
	if len(secret) == 0 {
		return "", ErrMissingSecret
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenLifetime)),
		},
		Email: email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseClaims verifies the token signature and expiry against the secret and
// returns the embedded claims. Any failure is reported as ErrInvalidToken.
func ParseClaims(secret []byte, token string) (Claims, error) {
	claims := Claims{}

	t, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return secret, nil
	})
	if err != nil || !t.Valid {
		return Claims{}, ErrInvalidToken
	}

	return claims, nil
}
