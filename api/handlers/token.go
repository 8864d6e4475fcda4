package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/MediCampHub/medicamp-services/internal/authn"
	"github.com/MediCampHub/medicamp-services/models"
	"github.com/rs/zerolog"
)

// IssueToken signs a one-hour credential for the posted email. The route is
// ungated: possession of a credential proves nothing until the organizer
// gate checks the stored role.
func IssueToken(secret []byte) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := zerolog.Ctx(r.Context()).With().Str("handler", "IssueToken").Logger()

		var payload struct {
			Email string `json:"email"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.Error().Err(err).Msg("Invalid request payload")
			http.Error(w, "Invalid request payload", http.StatusBadRequest)
			return
		}

		token, err := authn.IssueToken(secret, payload.Email)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to sign token")
			http.Error(w, "Failed to sign token", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(models.TokenResponse{Token: token}); err != nil {
			logger.Error().Err(err).Msg("Failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}
}

// Health returns the static liveness string served at the root path.
func Health() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Medical Camp is Running"))
	}
}
