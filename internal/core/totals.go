package core

// TotalExpenses sums the settled payment amounts of outgoing rows, negated
// to a positive magnitude and rounded to two decimals. Note this reads
// PaymentAmount, not the operation Amount the category rollups use.
func TotalExpenses(txs []Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.PaymentAmount < 0 {
			sum += tx.PaymentAmount
		}
	}
	return Round2(-sum)
}

// TotalIncome sums the settled payment amounts of incoming rows.
func TotalIncome(txs []Transaction) float64 {
	var sum float64
	for _, tx := range txs {
		if tx.PaymentAmount > 0 {
			sum += tx.PaymentAmount
		}
	}
	return sum
}
