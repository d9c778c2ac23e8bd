package core

import (
	"math"
	"sort"
)

// mainExpensesLimit is how many expense categories are reported individually
// before the remainder collapses into the synthetic "Остальное" row.
const mainExpensesLimit = 7

// MainExpenses rolls up expense transactions (negative operation amount) by
// category. The seven largest categories are kept individually, sorted by
// descending amount; everything past them sums into a trailing "Остальное"
// row rounded to a whole number. The trailing row is always appended last,
// even when its remainder is zero or would outrank the kept categories.
//
// Empty input, or input with no expense rows, yields an empty result with no
// placeholder rows.
func MainExpenses(txs []Transaction) []CategoryAmount {
	expenses := filterTx(txs, func(tx Transaction) bool { return tx.Amount < 0 })
	if len(expenses) == 0 {
		return nil
	}

	rows := rollupDescending(expenses, sumAbsAmount)

	var otherSum float64
	if len(rows) > mainExpensesLimit {
		for _, r := range rows[mainExpensesLimit:] {
			otherSum += r.Amount
		}
		rows = rows[:mainExpensesLimit]
	}
	return append(rows, CategoryAmount{Category: CategoryOther, Amount: math.Round(otherSum)})
}

// MainIncome rolls up income transactions (positive operation amount) by
// category, sorted by descending amount. Income has no top-K bucketing.
func MainIncome(txs []Transaction) []CategoryAmount {
	income := filterTx(txs, func(tx Transaction) bool { return tx.Amount > 0 })
	if len(income) == 0 {
		return nil
	}
	return rollupDescending(income, sumAmount)
}

// TransfersAndCash reports the outgoing totals of the two sentinel
// categories "Переводы" and "Наличные". It always returns exactly two rows,
// sorted by descending amount; when nothing matches, both categories are
// reported with a zero amount, transfers first as the defined tie-break.
func TransfersAndCash(txs []Transaction) []CategoryAmount {
	matched := filterTx(txs, func(tx Transaction) bool {
		return tx.Amount < 0 && (tx.Category == CategoryTransfers || tx.Category == CategoryCash)
	})

	rows := []CategoryAmount{
		{Category: CategoryTransfers},
		{Category: CategoryCash},
	}
	sums, _ := groupReduce(matched, categoryKey, sumAbsAmount)
	for i := range rows {
		rows[i].Amount = sums[rows[i].Category]
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Amount > rows[j].Amount })
	return rows
}

// rollupDescending groups by category with the given reduction and returns
// rows sorted by descending amount, category name breaking exact ties.
func rollupDescending(txs []Transaction, reduce reduceFunc) []CategoryAmount {
	sums, _ := groupReduce(txs, categoryKey, reduce)
	rows := make([]CategoryAmount, 0, len(sums))
	for cat, sum := range sums {
		rows = append(rows, CategoryAmount{Category: cat, Amount: sum})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Amount != rows[j].Amount {
			return rows[i].Amount > rows[j].Amount
		}
		return rows[i].Category < rows[j].Category
	})
	return rows
}
