package handlers

import (
	"net/http"

	"github.com/MediCampHub/medicamp-services/db"
	services "github.com/MediCampHub/medicamp-services/internal/services"
)

func ListAllCamps(store db.CampStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ListAllCampsService(store, w, r)
	}
}

func ListCampsByOwner(store db.CampStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ListCampsByOwnerService(store, w, r)
	}
}

func GetCamp(store db.CampStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetCampService(store, w, r)
	}
}

func CreateCamp(store db.CampStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateCampService(store, w, r)
	}
}

func UpdateCamp(store db.CampStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.UpdateCampService(store, w, r)
	}
}

func DeleteCamp(store db.CampStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteCampService(store, w, r)
	}
}
