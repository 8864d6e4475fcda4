package services

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/MediCampHub/medicamp-services/db"
	"github.com/MediCampHub/medicamp-services/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ListRegistrationsService returns every join-camp record.
func ListRegistrationsService(store db.RegistrationStore, w http.ResponseWriter, r *http.Request) {
	regs, err := store.ListRegistrations(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to retrieve registrations")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, regs)
}

// CreateRegistrationService stores the registration payload as submitted,
// stamped with a confirmation id and creation time.
func CreateRegistrationService(store db.RegistrationStore, w http.ResponseWriter, r *http.Request) {
	var reg models.Registration
	if err := json.NewDecoder(r.Body).Decode(&reg); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	reg["confirmationId"] = uuid.NewString()
	reg["createdAt"] = time.Now().UTC()

	result, err := store.InsertRegistration(r.Context(), reg)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to insert registration")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, result)
}
