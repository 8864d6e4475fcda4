package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MediCampHub/medicamp-services/db"
	"github.com/MediCampHub/medicamp-services/internal/appconfig"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	logLevel   string
	host       string
	port       int
	configPath string

	appCfg *appconfig.Config
	campDB *db.CampDB
)

var rootCmd = &cobra.Command{
	Use:   "medicamp-services",
	Short: "MediCamp Services",
	Long:  `MediCamp Services is a CLI tool for running and managing the medical camp API.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"path to the config file")
}

// commonSetUp configures logging, loads the config and connects to MongoDB.
func commonSetUp() {
	setLogging(logLevel)

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	logger := log.With().Str("component", "db").Logger()
	campDB, err = db.NewCampDB(appCfg.Database, &logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize CampDB")
	}
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
