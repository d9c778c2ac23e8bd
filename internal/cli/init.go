// Package cli provides common initialization and the interactive prompt
// helpers for cmd/finreport.
package cli

import (
	"os"

	"github.com/joho/godotenv"

	"finreport/internal/archive"
	"finreport/internal/config"
	"finreport/internal/log"
)

// SetupLogger initializes structured logging with default settings and sets
// it as the process default.
func SetupLogger() *log.Logger {
	logger := log.New(log.DefaultConfig())
	log.SetDefault(logger)
	return logger
}

// LoadEnvFile loads the .env file for local development. Errors are ignored
// silently as the file is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// LoadAndValidateConfig loads configuration and validates it. Returns the
// config or exits the process on validation failure.
func LoadAndValidateConfig(logger *log.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", log.FieldError, err.Error())
		os.Exit(1)
	}
	return cfg
}

// OpenArchive opens the report archive. An empty path disables archiving;
// an open failure is logged and the program continues without history.
func OpenArchive(logger *log.Logger, dbPath string) *archive.Repository {
	if dbPath == "" {
		return nil
	}
	repo, err := archive.New(dbPath, logger)
	if err != nil {
		logger.Warn("Report archive unavailable, continuing without history",
			log.FieldPath, dbPath, log.FieldError, err.Error())
		return nil
	}
	return repo
}
