package core

import "testing"

func expense(category string, amount float64) Transaction {
	return Transaction{Status: StatusOK, Category: category, Amount: amount}
}

func TestMainExpensesFewerThanLimit(t *testing.T) {
	// Five expense categories: all five are reported, and the "Остальное"
	// row is still appended with a zero remainder.
	txs := []Transaction{
		expense("Housing", -550),
		expense("Food", -325),
		expense("Fun", -300),
		expense("Transport", -80),
		expense("Health", -50),
	}
	got := MainExpenses(txs)
	want := []CategoryAmount{
		{Category: "Housing", Amount: 550},
		{Category: "Food", Amount: 325},
		{Category: "Fun", Amount: 300},
		{Category: "Transport", Amount: 80},
		{Category: "Health", Amount: 50},
		{Category: CategoryOther, Amount: 0},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMainExpensesBucketsRemainder(t *testing.T) {
	txs := []Transaction{
		expense("c1", -900), expense("c2", -800), expense("c3", -700),
		expense("c4", -600), expense("c5", -500), expense("c6", -400),
		expense("c7", -300), expense("c8", -200), expense("c9", -100),
	}
	got := MainExpenses(txs)
	if len(got) != mainExpensesLimit+1 {
		t.Fatalf("expected %d rows, got %d", mainExpensesLimit+1, len(got))
	}
	last := got[len(got)-1]
	if last.Category != CategoryOther || last.Amount != 300 {
		t.Fatalf("remainder row: got %+v", last)
	}

	// Sum preservation: all reported amounts add up to the total outflow.
	var sum float64
	for _, r := range got {
		sum += r.Amount
	}
	if sum != 4500 {
		t.Fatalf("amounts sum to %v, want 4500", sum)
	}
}

func TestMainExpensesOtherAppendedLast(t *testing.T) {
	// The remainder outweighs the smallest kept categories but still trails.
	txs := []Transaction{
		expense("c1", -10), expense("c2", -9), expense("c3", -8),
		expense("c4", -7), expense("c5", -6), expense("c6", -5),
		expense("c7", -4),
		expense("c8", -1000), expense("c9", -2000),
	}
	got := MainExpenses(txs)
	if got[len(got)-1].Category != CategoryOther {
		t.Fatalf("last row must be %q, got %+v", CategoryOther, got)
	}
	if got[len(got)-1].Amount != 9 {
		// c9/c8 rank into the top seven; c6 and c7 are the remainder.
		t.Fatalf("remainder: got %v, want 9", got[len(got)-1].Amount)
	}
	if got[0].Amount != 2000 || got[1].Amount != 1000 {
		t.Fatalf("kept rows must stay sorted descending: %+v", got[:2])
	}
}

func TestMainExpensesIgnoresIncome(t *testing.T) {
	txs := []Transaction{expense("Salary", 50000)}
	if got := MainExpenses(txs); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
	if got := MainExpenses(nil); len(got) != 0 {
		t.Fatalf("expected empty result for empty input, got %+v", got)
	}
}

func TestMainIncome(t *testing.T) {
	txs := []Transaction{
		expense("Зарплата", 50000),
		expense("Кэшбэк", 500),
		expense("Зарплата", 25000),
		expense("Супермаркеты", -1000),
	}
	got := MainIncome(txs)
	want := []CategoryAmount{
		{Category: "Зарплата", Amount: 75000},
		{Category: "Кэшбэк", Amount: 500},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestMainIncomeEmpty(t *testing.T) {
	if got := MainIncome([]Transaction{expense("Food", -10)}); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestTransfersAndCash(t *testing.T) {
	txs := []Transaction{
		expense(CategoryTransfers, -1000),
		expense(CategoryCash, -3000),
		expense(CategoryTransfers, -500),
		expense(CategoryCash, 200),       // incoming, excluded
		expense("Супермаркеты", -700),    // other category, excluded
	}
	got := TransfersAndCash(txs)
	if len(got) != 2 {
		t.Fatalf("expected exactly 2 rows, got %d", len(got))
	}
	if got[0] != (CategoryAmount{Category: CategoryCash, Amount: 3000}) {
		t.Fatalf("row 0: got %+v", got[0])
	}
	if got[1] != (CategoryAmount{Category: CategoryTransfers, Amount: 1500}) {
		t.Fatalf("row 1: got %+v", got[1])
	}
}

func TestTransfersAndCashNoMatches(t *testing.T) {
	for i, txs := range [][]Transaction{nil, {expense("Food", -10)}} {
		got := TransfersAndCash(txs)
		if len(got) != 2 {
			t.Fatalf("case %d: expected exactly 2 rows, got %d", i, len(got))
		}
		if got[0].Category != CategoryTransfers || got[0].Amount != 0 {
			t.Fatalf("case %d row 0: got %+v", i, got[0])
		}
		if got[1].Category != CategoryCash || got[1].Amount != 0 {
			t.Fatalf("case %d row 1: got %+v", i, got[1])
		}
	}
}
