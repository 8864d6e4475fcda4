package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MediCampHub/medicamp-services/db"
	"github.com/MediCampHub/medicamp-services/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListAllCampsService returns every camp.
func ListAllCampsService(store db.CampStore, w http.ResponseWriter, r *http.Request) {
	camps, err := store.ListCamps(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to retrieve camps")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, camps)
}

// ListCampsByOwnerService returns the camps created by the email given in
// the query string.
func ListCampsByOwnerService(store db.CampStore, w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	camps, err := store.ListCampsByOwner(r.Context(), email)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to retrieve camps")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, camps)
}

// GetCampService returns the camp with the path id, or null when no camp
// matches.
func GetCampService(store db.CampStore, w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid camp id"))
		return
	}

	camp, err := store.FindCampByID(r.Context(), id)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to retrieve camp")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, camp)
}

// CreateCampService inserts a new camp.
func CreateCampService(store db.CampStore, w http.ResponseWriter, r *http.Request) {
	var camp models.Camp
	if err := json.NewDecoder(r.Body).Decode(&camp); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	result, err := store.InsertCamp(r.Context(), camp)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to insert camp")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, result)
}

// UpdateCampService replaces the content fields of the camp with the path id.
func UpdateCampService(store db.CampStore, w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid camp id"))
		return
	}

	var fields models.CampUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	result, err := store.UpdateCamp(r.Context(), id, fields)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to update camp")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, result)
}

// DeleteCampService deletes the camp with the path id.
func DeleteCampService(store db.CampStore, w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid camp id"))
		return
	}

	result, err := store.DeleteCamp(r.Context(), id)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to delete camp")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, result)
}
