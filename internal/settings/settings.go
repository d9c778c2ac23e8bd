// Package settings reads the user's report preferences from a JSON file.
package settings

import (
	"encoding/json"
	"os"

	"finreport/internal/log"
)

// Settings lists the currencies and stock tickers the user wants quoted on
// the report pages.
type Settings struct {
	Currencies []string `json:"user_currencies"`
	Stocks     []string `json:"user_stocks"`
}

// Load reads the settings file. A missing or malformed file yields empty
// lists with a warning; the report pages then simply carry no market data.
func Load(path string, logger *log.Logger) Settings {
	logger = logger.WithComponent(log.ComponentSettings)

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("Settings file not readable", log.FieldPath, path, log.FieldError, err.Error())
		return Settings{}
	}

	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		logger.Warn("Settings file not valid JSON", log.FieldPath, path, log.FieldError, err.Error())
		return Settings{}
	}

	logger.Info("Settings loaded", log.FieldPath, path,
		"currencies", len(s.Currencies), "stocks", len(s.Stocks))
	return s
}
