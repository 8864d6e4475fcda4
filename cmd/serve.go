package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/MediCampHub/medicamp-services/api/handlers"
	"github.com/MediCampHub/medicamp-services/api/middleware"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server for handling API requests",
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, connect to the database and set up logging
		commonSetUp()
		defer campDB.Close()

		// The unique email index is the rejection point for duplicate users
		if err := campDB.EnsureIndexes(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("Failed to ensure indexes")
		}

		secret := []byte(os.Getenv("ACCESS_TOKEN_SECRET"))
		if len(secret) == 0 {
			log.Fatal().Msg("ACCESS_TOKEN_SECRET environment variable is not set")
		}

		// Create routes
		r := mux.NewRouter()
		r.Use(middleware.WithLogger)
		r.Use(middleware.CORS)

		// Register the routes under the configured base path
		api := r.PathPrefix(appCfg.BasePath).Subrouter()

		// Gate chains for the protected routes
		authed := middleware.JWTMiddleware(secret)
		organizer := func(next http.Handler) http.Handler {
			return authed(middleware.RequireOrganizer(campDB)(next))
		}

		// Liveness and token routes
		api.HandleFunc("/", handlers.Health()).Methods(http.MethodGet)
		api.HandleFunc("/jwt", handlers.IssueToken(secret)).Methods(http.MethodPost)

		// User routes
		api.Handle("/users", organizer(handlers.ListUsers(campDB))).Methods(http.MethodGet)
		api.HandleFunc("/users", handlers.CreateUser(campDB)).Methods(http.MethodPost)
		api.HandleFunc("/userRole/{email}", handlers.GetUserRole(campDB)).Methods(http.MethodGet)
		api.Handle("/users/organizer/{email}", authed(handlers.CheckOrganizer(campDB))).Methods(http.MethodGet)
		api.Handle("/users/organizer/{id}", organizer(handlers.PromoteUser(campDB))).Methods(http.MethodPatch)
		api.Handle("/users/{id}", organizer(handlers.DeleteUser(campDB))).Methods(http.MethodDelete)

		// Join camp routes
		api.HandleFunc("/joinCamp", handlers.ListRegistrations(campDB)).Methods(http.MethodGet)
		api.HandleFunc("/joinCamp", handlers.CreateRegistration(campDB)).Methods(http.MethodPost)

		// Camp routes
		api.HandleFunc("/addCamp", handlers.ListCampsByOwner(campDB)).Methods(http.MethodGet)
		api.HandleFunc("/addCamp", handlers.CreateCamp(campDB)).Methods(http.MethodPost)
		api.HandleFunc("/addCampAll", handlers.ListAllCamps(campDB)).Methods(http.MethodGet)
		api.HandleFunc("/addCamp/{id}", handlers.GetCamp(campDB)).Methods(http.MethodGet)
		api.HandleFunc("/addCamp/{id}", handlers.UpdateCamp(campDB)).Methods(http.MethodPatch)
		api.HandleFunc("/addCamp/{id}", handlers.DeleteCamp(campDB)).Methods(http.MethodDelete)

		log.Info().Msg(fmt.Sprintf("Server started at %s:%d", host, port))

		if err := http.ListenAndServe(fmt.Sprintf("%s:%d", host, port),
			r); err != nil {

			log.Error().Err(err).Msg("could not start server")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&host, "host", "0.0.0.0", "host to run the server on")
	serveCmd.Flags().IntVar(&port, "port", 5000, "port to run the server on")
}
