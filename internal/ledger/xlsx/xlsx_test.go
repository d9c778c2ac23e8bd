package xlsx

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"finreport/internal/ledger"
	"finreport/internal/log"
)

func writeWorkbook(t *testing.T, path string, rows [][]interface{}) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "operations.xlsx")
	writeWorkbook(t, path, [][]interface{}{
		{ledger.ColOperationTime, ledger.ColCardID, ledger.ColAmount, ledger.ColStatus, ledger.ColCategory, ledger.ColDescription},
		{"31.12.2021 16:44:00", "*7197", "-160.89", "OK", "Супермаркеты", "Колхоз"},
		{"30.12.2021 12:00:00", "*7197", "-1000", "OK", "Переводы", "Перевод"},
	})

	src := New(path, "", log.New(log.DefaultConfig()))
	txs, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
	if txs[0].Category != "Супермаркеты" || txs[0].Amount != -160.89 {
		t.Fatalf("unexpected transaction: %+v", txs[0])
	}
}

func TestLoadMissingFile(t *testing.T) {
	src := New(filepath.Join(t.TempDir(), "absent.xlsx"), "", log.New(log.DefaultConfig()))
	txs, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("missing file must not error, got %v", err)
	}
	if len(txs) != 0 {
		t.Fatalf("expected empty table, got %d rows", len(txs))
	}
}
