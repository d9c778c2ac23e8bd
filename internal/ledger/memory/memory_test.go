package memory

import (
	"context"
	"testing"
	"time"

	"finreport/internal/core"
)

func TestLoadReturnsCopy(t *testing.T) {
	seed := []core.Transaction{
		{OperationTime: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), Amount: -10, Status: core.StatusOK},
	}
	store := New(seed)

	first, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	first[0].Amount = 999

	second, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second[0].Amount != -10 {
		t.Fatalf("store leaked its backing slice: %+v", second[0])
	}
}

func TestAdd(t *testing.T) {
	store := New(nil)
	store.Add(core.Transaction{Amount: -1}, core.Transaction{Amount: -2})
	txs, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(txs))
	}
}
