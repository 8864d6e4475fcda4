package handlers

import (
	"net/http"

	"github.com/MediCampHub/medicamp-services/db"
	services "github.com/MediCampHub/medicamp-services/internal/services"
)

func ListUsers(store db.UserStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.ListUsersService(store, w, r)
	}
}

func GetUserRole(store db.UserStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.GetUserRoleService(store, w, r)
	}
}

func CheckOrganizer(store db.UserStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CheckOrganizerService(store, w, r)
	}
}

func CreateUser(store db.UserStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.CreateUserService(store, w, r)
	}
}

func PromoteUser(store db.UserStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.PromoteUserService(store, w, r)
	}
}

func DeleteUser(store db.UserStore) http.HandlerFunc {

	return func(w http.ResponseWriter, r *http.Request) {

		services.DeleteUserService(store, w, r)
	}
}
