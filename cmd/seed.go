package cmd

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var seedEmail string

var seedCmd = &cobra.Command{
	Use:   "seed-organizer",
	Short: "Grant the organizer role to a user by email",
	Long: `Promoting a user through the API requires an existing organizer
credential, so the first organizer must be seeded out-of-band. This job
grants the organizer role directly in the database.`,
	Run: func(cmd *cobra.Command, args []string) {

		// Load the config, connect to the database and set up logging
		commonSetUp()
		defer campDB.Close()

		result, err := campDB.GrantOrganizerByEmail(context.Background(), seedEmail)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to grant organizer role")
		}

		if result.MatchedCount == 0 {
			log.Fatal().Str("email", seedEmail).Msg("no user found with that email")
		}

		log.Info().Str("email", seedEmail).Msg("organizer role granted")
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().StringVar(&seedEmail, "email", "", "email of the user to promote")
	seedCmd.MarkFlagRequired("email")
}
