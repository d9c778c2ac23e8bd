package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"finreport/internal/log"
)

// Default output file names under the data directory.
const (
	MainPageFile   = "main_page_info.json"
	EventsPageFile = "events_page_info.json"
)

// WriteJSON serializes a page payload to path, indented, with Cyrillic
// labels kept literal rather than escaped.
func WriteJSON(path string, v any, logger *log.Logger) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "    ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode payload: %w", err)
	}

	logger.WithComponent(log.ComponentReport).Info("Report written", log.FieldPath, path)
	return nil
}
