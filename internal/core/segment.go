package core

import "time"

// StartOfMonth returns midnight on the first day of t's month.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// ResolveSegment computes the half-open [start, end) interval for a period
// relative to a reference instant.
//
// Week starts on the most recent Monday at midnight and ends seven days
// later. Month covers the reference instant's calendar month. Year covers
// its calendar year. PeriodAll is deliberately not modeled here; callers
// route whole-history filtering around segment resolution entirely.
func ResolveSegment(t time.Time, p Period) (Segment, error) {
	switch p {
	case PeriodAll:
		return Segment{}, ErrUnsupportedPeriod
	case PeriodWeek:
		start := startOfWeek(t)
		return Segment{Start: start, End: start.AddDate(0, 0, 7)}, nil
	case PeriodMonth:
		start := StartOfMonth(t)
		return Segment{Start: start, End: endOfMonth(t)}, nil
	case PeriodYear:
		start := time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
		return Segment{Start: start, End: start.AddDate(1, 0, 0)}, nil
	default:
		return Segment{}, ErrInvalidPeriod
	}
}

// startOfWeek returns midnight on the Monday at or before t.
func startOfWeek(t time.Time) time.Time {
	// time.Weekday counts from Sunday; shift so Monday is offset zero.
	offset := (int(t.Weekday()) + 6) % 7
	day := t.AddDate(0, 0, -offset)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, t.Location())
}

// endOfMonth returns midnight on the first day of the month after t.
// Jumping to day 28 and adding 4 days always lands in the next month,
// for every month length including leap Februaries.
func endOfMonth(t time.Time) time.Time {
	next := time.Date(t.Year(), t.Month(), 28, 0, 0, 0, 0, t.Location()).AddDate(0, 0, 4)
	return time.Date(next.Year(), next.Month(), 1, 0, 0, 0, 0, t.Location())
}
