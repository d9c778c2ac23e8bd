// Package memory is an in-memory ledger source for tests and demos.
package memory

import (
	"context"
	"sync"

	"finreport/internal/core"
	"finreport/internal/ledger"
)

type Store struct {
	mu  sync.Mutex
	txs []core.Transaction
}

var _ ledger.Source = (*Store)(nil)

func New(txs []core.Transaction) *Store {
	return &Store{txs: append([]core.Transaction(nil), txs...)}
}

// Load returns a copy of the stored table; callers own the result.
func (s *Store) Load(ctx context.Context) ([]core.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]core.Transaction(nil), s.txs...), nil
}

// Add appends transactions to the store.
func (s *Store) Add(txs ...core.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, txs...)
}
