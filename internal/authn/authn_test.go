package authn

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

var testSecret = []byte("test-secret")

func TestIssueToken_RoundTrip(t *testing.T) {
	token, err := IssueToken(testSecret, "a@x.com")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := ParseClaims(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)

	// Expiry is one hour out
	assert.WithinDuration(t, time.Now().Add(TokenLifetime),
		claims.ExpiresAt.Time, time.Minute)
}

func TestIssueToken_MissingSecret(t *testing.T) {
	_, err := IssueToken(nil, "a@x.com")
	assert.ErrorIs(t, err, ErrMissingSecret)
}

func TestParseClaims_WrongSecret(t *testing.T) {
	token, err := IssueToken(testSecret, "a@x.com")
	assert.NoError(t, err)

	_, err = ParseClaims([]byte("other-secret"), token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaims_Expired(t *testing.T) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
		Email: "a@x.com",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	assert.NoError(t, err)

	_, err = ParseClaims(testSecret, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseClaims_Malformed(t *testing.T) {
	_, err := ParseClaims(testSecret, "not-a-jwt")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
