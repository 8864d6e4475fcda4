package services

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MediCampHub/medicamp-services/api/middleware"
	"github.com/MediCampHub/medicamp-services/db"
	"github.com/MediCampHub/medicamp-services/internal/authn"
	"github.com/MediCampHub/medicamp-services/models"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListUsersService returns every stored user. The organizer gate has already
// run by the time this is reached.
func ListUsersService(store db.UserStore, w http.ResponseWriter, r *http.Request) {
	users, err := store.ListUsers(r.Context())
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to retrieve users")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, users)
}

// GetUserRoleService returns the user document for the path email, or null
// when no user matches.
func GetUserRoleService(store db.UserStore, w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	user, err := store.FindUserByEmail(r.Context(), email)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to retrieve user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, user)
}

// CheckOrganizerService reports whether the path email belongs to an
// organizer. The path email must match the credential identity.
func CheckOrganizerService(store db.UserStore, w http.ResponseWriter, r *http.Request) {
	email := mux.Vars(r)["email"]

	claims, ok := r.Context().Value(middleware.ClaimsKey).(authn.Claims)
	if !ok {
		HandleErrResponse(w, http.StatusUnauthorized, errors.New("unauthorized: invalid claims"))
		return
	}

	if email != claims.Email {
		HandleErrResponse(w, http.StatusForbidden, errors.New("forbidden access"))
		return
	}

	user, err := store.FindUserByEmail(r.Context(), email)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to retrieve user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil,
		models.OrganizerResponse{Organizer: user.IsOrganizer()})
}

// CreateUserService inserts a new user, storing the profile payload exactly
// as submitted. A duplicate email is reported back as a conflict result with
// a null inserted id and no mutation.
func CreateUserService(store db.UserStore, w http.ResponseWriter, r *http.Request) {
	var user models.UserDocument
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Invalid request payload")
		HandleErrResponse(w, http.StatusBadRequest, err)
		return
	}

	result, err := store.InsertUser(r.Context(), user)
	if err != nil {
		if errors.Is(err, db.ErrUserExists) {
			HandleSuccessResponse(w, http.StatusOK, nil, models.InsertResult{
				InsertedID: nil,
				Message:    "User Already Exists",
			})
			return
		}
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to insert user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, result)
}

// PromoteUserService sets role=organizer on the user with the path id.
func PromoteUserService(store db.UserStore, w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	result, err := store.PromoteOrganizer(r.Context(), id)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to promote user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, result)
}

// DeleteUserService deletes the user with the path id.
func DeleteUserService(store db.UserStore, w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(mux.Vars(r)["id"])
	if err != nil {
		HandleErrResponse(w, http.StatusBadRequest, errors.New("invalid user id"))
		return
	}

	result, err := store.DeleteUser(r.Context(), id)
	if err != nil {
		zerolog.Ctx(r.Context()).Error().Err(err).Msg("Failed to delete user")
		HandleErrResponse(w, http.StatusInternalServerError, err)
		return
	}

	HandleSuccessResponse(w, http.StatusOK, nil, result)
}
