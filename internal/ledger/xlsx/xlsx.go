// Package xlsx loads the operations ledger from a local workbook file.
package xlsx

import (
	"context"
	"errors"
	"io/fs"

	"github.com/xuri/excelize/v2"

	"finreport/internal/core"
	"finreport/internal/ledger"
	"finreport/internal/log"
)

type Source struct {
	path   string
	sheet  string // empty means first sheet
	logger *log.Logger
}

var _ ledger.Source = (*Source)(nil)

func New(path, sheet string, logger *log.Logger) *Source {
	return &Source{
		path:   path,
		sheet:  sheet,
		logger: logger.WithComponent(log.ComponentLedger),
	}
}

// Load reads the workbook and decodes its rows. A missing or unreadable
// file loads as an empty table; downstream a report over zero transactions
// is well formed, not a failure.
func (s *Source) Load(ctx context.Context) ([]core.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("Operations file not found", log.FieldPath, s.path)
		} else {
			s.logger.Warn("Failed to open operations file", log.FieldPath, s.path, log.FieldError, err.Error())
		}
		return nil, nil
	}
	defer f.Close()

	sheet := s.sheet
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		s.logger.Warn("Failed to read sheet", log.FieldPath, s.path, log.FieldSheet, sheet, log.FieldError, err.Error())
		return nil, nil
	}

	txs := ledger.DecodeTable(rows, s.logger)
	s.logger.Info("Operations loaded", log.FieldPath, s.path, log.FieldSheet, sheet, log.FieldRowCount, len(txs))
	return txs, nil
}
