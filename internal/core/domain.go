package core

import (
	"errors"
	"time"
)

// StatusOK is the only operation status eligible for reports.
const StatusOK = "OK"

// Sentinel categories of the ledger's user taxonomy. The labels are part of
// the external report contract and must not be translated.
const (
	CategoryTransfers = "Переводы"
	CategoryCash      = "Наличные"
	CategoryOther     = "Остальное"
)

const (
	PeriodAll   Period = "ALL"
	PeriodWeek  Period = "W"
	PeriodMonth Period = "M"
	PeriodYear  Period = "Y"
)

type (
	// Period is a named relative time window.
	Period string

	// Transaction is one row of the card ledger.
	//
	// Amount and PaymentAmount are two independent signed fields: Amount (the
	// operation amount) drives card aggregation and category rollups, while
	// PaymentAmount (the settled amount) feeds the expense/income totals.
	// Negative values are outgoing, positive incoming.
	Transaction struct {
		OperationTime time.Time
		PaymentDate   time.Time // zero when the row has no settlement date
		CardID        string
		Amount        float64
		PaymentAmount float64
		Status        string
		Category      string
		Description   string
	}

	// Segment is a half-open [Start, End) interval of timestamps.
	Segment struct {
		Start time.Time
		End   time.Time
	}

	// CardSummary is the per-card aggregation row.
	CardSummary struct {
		LastDigits string  `json:"last_digits"`
		TotalSpent float64 `json:"total_spent"`
		Cashback   float64 `json:"cashback"`
	}

	// TopTransaction is the projection used by the top-transactions list.
	TopTransaction struct {
		Date        string  `json:"date"`
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
	}

	// CategoryAmount is one row of a category rollup. Amount is always an
	// absolute value; the expense and income branches are split by sign
	// before rolling up.
	CategoryAmount struct {
		Category string  `json:"category"`
		Amount   float64 `json:"amount"`
	}
)

var (
	ErrInvalidPeriod     = errors.New("invalid period")
	ErrUnsupportedPeriod = errors.New("period not supported for segment resolution")
)

// ParsePeriod validates a period token. Exactly ALL, W, M and Y are accepted.
func ParsePeriod(s string) (Period, error) {
	p := Period(s)
	if !p.IsValid() {
		return "", ErrInvalidPeriod
	}
	return p, nil
}

// IsValid reports whether p is one of the four known period tokens.
func (p Period) IsValid() bool {
	switch p {
	case PeriodAll, PeriodWeek, PeriodMonth, PeriodYear:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer.
func (p Period) String() string {
	return string(p)
}

// Contains reports whether t falls inside the half-open interval.
func (s Segment) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End)
}
