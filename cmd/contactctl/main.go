package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ksred/contact-registry/internal/config"
	"github.com/ksred/contact-registry/internal/database"
	"github.com/ksred/contact-registry/internal/utils"
)

const version = "v0.1.0"

var (
	configPath string
	debug      bool
)

func main() {
	// Load .env before viper reads the environment
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:           "contactctl",
		Short:         "Contact registry administration",
		Long:          "contactctl manages the contact registry database: migrations, sample data and name deduplication.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(migrateCmd())
	rootCmd.AddCommand(statusCmd())
	rootCmd.AddCommand(seedCmd())
	rootCmd.AddCommand(dedupeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// setup loads configuration and builds the logger shared by all subcommands
func setup() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("failed to load configuration: %w", err)
	}

	if debug {
		cfg.Server.Debug = true
		cfg.Server.LogLevel = "debug"
	}

	logger := utils.NewLogger(utils.LoggerConfig{
		Level:      cfg.Server.LogLevel,
		Pretty:     true,
		CallerInfo: cfg.Server.Debug,
	})

	return cfg, logger, nil
}

// openDatabase connects using the loaded configuration
func openDatabase(cfg *config.Config, logger zerolog.Logger) (*database.Database, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Debug().
		Str("driver", cfg.Database.Driver).
		Msg("Connected to database")

	return db, nil
}
