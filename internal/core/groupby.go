package core

// reduceFunc folds one transaction into a per-group accumulator.
type reduceFunc func(acc float64, tx Transaction) float64

// Named reductions used by the aggregators. Keeping them as standalone
// functions (rather than inline closures at every call site) makes each
// reduction independently testable and reusable across grouping keys.
func sumAmount(acc float64, tx Transaction) float64    { return acc + tx.Amount }
func sumAbsAmount(acc float64, tx Transaction) float64 { return acc + abs(tx.Amount) }

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// groupReduce groups transactions by key and folds each group with reduce.
// The first transaction seen for each key is retained so callers can preserve
// first-seen formatting of the grouping value.
func groupReduce(txs []Transaction, key func(Transaction) string, reduce reduceFunc) (sums map[string]float64, first map[string]Transaction) {
	sums = make(map[string]float64)
	first = make(map[string]Transaction)
	for _, tx := range txs {
		k := key(tx)
		if _, ok := first[k]; !ok {
			first[k] = tx
		}
		sums[k] = reduce(sums[k], tx)
	}
	return sums, first
}

func cardKey(tx Transaction) string     { return tx.CardID }
func categoryKey(tx Transaction) string { return tx.Category }

// filterTx returns the transactions matching pred, in input order.
func filterTx(txs []Transaction, pred func(Transaction) bool) []Transaction {
	var out []Transaction
	for _, tx := range txs {
		if pred(tx) {
			out = append(out, tx)
		}
	}
	return out
}
