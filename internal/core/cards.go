package core

import "sort"

// SumMode selects the sign convention of per-card totals. Historical report
// revisions disagreed on whether card totals are signed sums or magnitudes;
// both are supported explicitly and SumAbsolute is the current behavior.
type SumMode int

const (
	SumAbsolute SumMode = iota
	SumSigned
)

// AggregateByCard groups transactions by card identifier and produces one
// summary row per card: the total rounded to two decimals and the cashback
// computed on the same basis as the requested total. The card identifier is
// carried through as a display string with its first-seen formatting.
//
// Output is sorted by card identifier; group order is otherwise unspecified.
// Empty input yields an empty result.
func AggregateByCard(txs []Transaction, mode SumMode) []CardSummary {
	if len(txs) == 0 {
		return nil
	}
	sums, first := groupReduce(txs, cardKey, sumAmount)

	out := make([]CardSummary, 0, len(sums))
	for k, total := range sums {
		basis := total
		if mode == SumAbsolute {
			basis = abs(total)
		}
		out = append(out, CardSummary{
			LastDigits: first[k].CardID,
			TotalSpent: Round2(basis),
			Cashback:   cashbackOf(basis),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].LastDigits < out[j].LastDigits })
	return out
}
