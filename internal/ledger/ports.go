// Package ledger defines the transaction source boundary and the column
// vocabulary of the bank's operations export.
package ledger

import (
	"context"

	"finreport/internal/core"
)

// Source yields the full transaction table. Adapters absorb their own
// failures: a missing or unreadable source loads as an empty table, it never
// raises past this boundary. The error return is reserved for context
// cancellation.
type Source interface {
	Load(ctx context.Context) ([]core.Transaction, error)
}

// Backend names the available ledger sources.
type Backend string

const (
	BackendXLSX   Backend = "xlsx"
	BackendSheets Backend = "sheets"
	BackendMemory Backend = "memory"
)

// String implements fmt.Stringer.
func (b Backend) String() string { return string(b) }

// IsValid reports whether b names a known ledger backend.
func (b Backend) IsValid() bool {
	switch b {
	case BackendXLSX, BackendSheets, BackendMemory:
		return true
	default:
		return false
	}
}
