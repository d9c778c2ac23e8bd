package core

import "sort"

// topDateLayout is the serialized form of the transaction date in the
// top-transactions list; part of the stable report contract.
const topDateLayout = "2006-01-02 15:04:05"

// DefaultTopCount is the number of transactions the Main page shows.
const DefaultTopCount = 5

// TopTransactions selects the n transactions with the largest operation
// amount and projects them to the four report fields. Ties are broken by
// original row order (stable selection). Empty input yields an empty result.
func TopTransactions(txs []Transaction, n int) []TopTransaction {
	if len(txs) == 0 || n <= 0 {
		return nil
	}
	ranked := make([]Transaction, len(txs))
	copy(ranked, txs)
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Amount > ranked[j].Amount })

	if n > len(ranked) {
		n = len(ranked)
	}
	out := make([]TopTransaction, 0, n)
	for _, tx := range ranked[:n] {
		out = append(out, TopTransaction{
			Date:        tx.OperationTime.Format(topDateLayout),
			Amount:      tx.Amount,
			Category:    tx.Category,
			Description: tx.Description,
		})
	}
	return out
}
