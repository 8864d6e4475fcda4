package handlers

import (
	"net/http"

	"github.com/MediCampHub/medicamp-services/db"
	services "github.com/MediCampHub/medicamp-services/internal/services"
)

func ListRegistrations(store db.RegistrationStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ListRegistrationsService(store, w, r)
	}
}

func CreateRegistration(store db.RegistrationStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateRegistrationService(store, w, r)
	}
}
