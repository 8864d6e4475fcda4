package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/MediCampHub/medicamp-services/db"
	"github.com/MediCampHub/medicamp-services/internal/authn"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type contextKey string

const ClaimsKey contextKey = "claims"

// JWTMiddleware verifies the bearer token and adds claims to the request context.
func JWTMiddleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				logger := zerolog.Ctx(r.Context()).With().
					Str("handler", "JWTMiddleware").Logger()

				// Get the Authorization header
				authHeader := r.Header.Get("Authorization")
				if authHeader == "" {
					logger.Debug().Msg("authorization header missing")
					http.Error(w, "unauthorized access",
						http.StatusUnauthorized)
					return
				}

				// Check the Authorization header format
				token := strings.TrimPrefix(authHeader, "Bearer ")
				if token == authHeader {
					logger.Error().Msg("invalid token format")
					http.Error(w, "unauthorized access", http.StatusUnauthorized)
					return
				}

				// Verify the token signature and expiry
				claims, err := authn.ParseClaims(secret, token)
				if err != nil {
					logger.Error().Err(err).Msg("invalid bearer jwt token")
					http.Error(w, "unauthorized access", http.StatusUnauthorized)
					return
				}

				// Add the claims to the context
				ctx := context.WithValue(r.Context(), ClaimsKey, claims)

				next.ServeHTTP(w, r.WithContext(ctx))
			},
		)
	}
}

// RequireOrganizer gates a route on the caller's stored role. It must run
// after JWTMiddleware so the claims email is available. A missing user or a
// non-organizer role is forbidden; a failed lookup is a server fault, never
// conflated with forbidden.
func RequireOrganizer(store db.UserStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				logger := zerolog.Ctx(r.Context()).With().
					Str("handler", "RequireOrganizer").Logger()

				claims, ok := r.Context().Value(ClaimsKey).(authn.Claims)
				if !ok {
					logger.Error().Msg("claims missing from context")
					http.Error(w, "unauthorized access", http.StatusUnauthorized)
					return
				}

				user, err := store.FindUserByEmail(r.Context(), claims.Email)
				if err != nil {
					logger.Error().Err(err).Msg("organizer lookup failed")
					http.Error(w, "internal server error",
						http.StatusInternalServerError)
					return
				}

				if !user.IsOrganizer() {
					logger.Debug().Str("email", claims.Email).
						Msg("caller is not an organizer")
					http.Error(w, "forbidden access", http.StatusForbidden)
					return
				}

				next.ServeHTTP(w, r)
			},
		)
	}
}

// CORS allows cross-origin requests from the camp frontend and short-circuits
// preflight requests.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods",
				"GET, POST, PATCH, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers",
				"Content-Type, Authorization")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		},
	)
}

// WithLogger adds a logger to the context and logs request information.
func WithLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			logger := log.With().
				Str("host", r.Host).
				Str("method", r.Method).
				Str("url", r.URL.String()).
				Str("remote_addr", r.RemoteAddr).
				Time("timestamp", time.Now()).
				Logger()

			// Add the logger to the context
			ctx := logger.WithContext(r.Context())
			next.ServeHTTP(w, r.WithContext(ctx))
		},
	)
}
