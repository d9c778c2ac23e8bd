package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"finreport/internal/ledger"
)

type Config struct {
	// Ledger source
	DataBackend     string
	OperationsFile  string
	OperationsSheet string

	// Google Sheets ledger
	GoogleSpreadsheetID string
	GoogleSheetName     string

	// User preferences
	SettingsFile string

	// Report output
	OutputDir       string
	TopTransactions int

	// Market data APIs
	ExchangeRatesAPIKey string
	AlphaVantageAPIKey  string
	HTTPTimeout         time.Duration

	// Report archive; empty path disables archiving.
	ArchiveDBPath string

	// AMQP notifications; empty URL disables publishing.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	return &Config{
		DataBackend:     getEnv("DATA_BACKEND", "xlsx"),
		OperationsFile:  getEnv("OPERATIONS_FILE", "./data/operations.xlsx"),
		OperationsSheet: getEnv("OPERATIONS_SHEET", ""),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetName:     getEnv("GOOGLE_SHEET_NAME", "Operations"),

		SettingsFile: getEnv("SETTINGS_FILE", "./data/user_settings.json"),

		OutputDir:       getEnv("OUTPUT_DIR", "./data"),
		TopTransactions: getEnvInt("TOP_TRANSACTIONS", 5),

		ExchangeRatesAPIKey: getEnv("EXCHANGE_RATES_API_KEY", ""),
		AlphaVantageAPIKey:  getEnv("ALPHA_VANTAGE_API_KEY", ""),
		HTTPTimeout:         getEnvDuration("HTTP_TIMEOUT", 15*time.Second),

		ArchiveDBPath: getEnv("REPORT_ARCHIVE_DB", "./data/reports.db"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "finreport"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "report_events"),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	backend := ledger.Backend(c.DataBackend)
	if !backend.IsValid() {
		errors = append(errors, fmt.Sprintf("invalid data backend '%s': must be one of [xlsx sheets memory]", c.DataBackend))
	}

	if backend == ledger.BackendXLSX && c.OperationsFile == "" {
		errors = append(errors, "operations file path cannot be empty when using xlsx backend")
	}

	if backend == ledger.BackendSheets {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheets backend")
		}
		if c.GoogleSheetName == "" {
			errors = append(errors, "Google Sheet name is required when using sheets backend")
		}
	}

	if c.SettingsFile == "" {
		errors = append(errors, "settings file path cannot be empty")
	}

	if c.OutputDir == "" {
		errors = append(errors, "output directory cannot be empty")
	}

	if c.TopTransactions < 1 {
		errors = append(errors, fmt.Sprintf("invalid top transactions count %d: must be at least 1", c.TopTransactions))
	} else if c.TopTransactions > 100 {
		errors = append(errors, fmt.Sprintf("invalid top transactions count %d: must be at most 100", c.TopTransactions))
	}

	if c.HTTPTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// Backend returns the validated ledger backend.
func (c *Config) Backend() ledger.Backend {
	return ledger.Backend(c.DataBackend)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
