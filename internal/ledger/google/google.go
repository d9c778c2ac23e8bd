// Package google loads the operations ledger from a Google Sheets
// spreadsheet.
package google

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"finreport/internal/core"
	"finreport/internal/ledger"
	"finreport/internal/log"
)

type Source struct {
	svc           *gsheet.Service
	spreadsheetID string
	sheetName     string
	logger        *log.Logger
}

var _ ledger.Source = (*Source)(nil)

// New creates a Sheets-backed ledger source. Credentials come from
// GOOGLE_SERVICE_ACCOUNT_JSON, GOOGLE_SERVICE_ACCOUNT_FILE or
// GOOGLE_APPLICATION_CREDENTIALS, falling back to application default
// credentials.
func New(ctx context.Context, spreadsheetID, sheetName string, logger *log.Logger) (*Source, error) {
	if strings.TrimSpace(spreadsheetID) == "" {
		return nil, errors.New("missing spreadsheet ID")
	}
	if strings.TrimSpace(sheetName) == "" {
		sheetName = "Operations"
	}

	svc, err := newSheetsService(ctx)
	if err != nil {
		return nil, fmt.Errorf("sheets service: %w", err)
	}

	return &Source{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		sheetName:     sheetName,
		logger:        logger.WithComponent(log.ComponentLedger),
	}, nil
}

// Load reads the whole operations sheet. Fetch failures degrade to an empty
// table; only context cancellation is returned as an error.
func (s *Source) Load(ctx context.Context) ([]core.Transaction, error) {
	resp, err := s.svc.Spreadsheets.Values.Get(s.spreadsheetID, s.sheetName).Context(ctx).Do()
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logger.Warn("Failed to read operations sheet",
			log.FieldSheet, s.sheetName, log.FieldError, err.Error())
		return nil, nil
	}

	txs := ledger.DecodeTable(ledger.ValuesToStrings(resp.Values), s.logger)
	s.logger.Info("Operations loaded", log.FieldSheet, s.sheetName, log.FieldRowCount, len(txs))
	return txs, nil
}

func newSheetsService(ctx context.Context) (*gsheet.Service, error) {
	saJSON := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_JSON"))
	saFile := strings.TrimSpace(os.Getenv("GOOGLE_SERVICE_ACCOUNT_FILE"))
	if saJSON == "" && saFile == "" {
		saFile = strings.TrimSpace(os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"))
	}

	scope := goption.WithScopes(gsheet.SpreadsheetsReadonlyScope)
	switch {
	case saJSON != "":
		return gsheet.NewService(ctx, goption.WithCredentialsJSON([]byte(saJSON)), scope)
	case saFile != "":
		return gsheet.NewService(ctx, goption.WithCredentialsFile(saFile), scope)
	default:
		// Application default credentials.
		return gsheet.NewService(ctx, scope)
	}
}
