package core

import "time"

// FilterToDate keeps transactions posted between the start of now's month
// and now, inclusive of both ends, with status OK. This is the month-to-date
// view of the Main page; unlike period segments it includes the upper bound,
// since it represents "up to and including now".
//
// The input slice is never modified; the result is a fresh slice.
func FilterToDate(txs []Transaction, now time.Time) []Transaction {
	if len(txs) == 0 {
		return nil
	}
	start := StartOfMonth(now)
	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Status != StatusOK {
			continue
		}
		if tx.OperationTime.Before(start) || tx.OperationTime.After(now) {
			continue
		}
		out = append(out, tx)
	}
	return out
}

// FilterByPeriod keeps transactions with status OK inside the named period
// relative to now. PeriodAll keeps rows strictly after now (the Events page
// forward-looking filter); the calendar periods keep rows in the half-open
// segment resolved for now.
//
// The input slice is never modified. An unknown period is the only error.
func FilterByPeriod(txs []Transaction, now time.Time, p Period) ([]Transaction, error) {
	if !p.IsValid() {
		return nil, ErrInvalidPeriod
	}
	if len(txs) == 0 {
		return nil, nil
	}

	keep := func(t time.Time) bool { return t.After(now) }
	if p != PeriodAll {
		seg, err := ResolveSegment(now, p)
		if err != nil {
			return nil, err
		}
		keep = seg.Contains
	}

	out := make([]Transaction, 0, len(txs))
	for _, tx := range txs {
		if tx.Status == StatusOK && keep(tx.OperationTime) {
			out = append(out, tx)
		}
	}
	return out, nil
}
