package core

import "testing"

func TestAggregateByCard(t *testing.T) {
	txs := []Transaction{
		{CardID: "1234", Amount: 1000},
		{CardID: "1234", Amount: 2000},
		{CardID: "5678", Amount: 1500},
		{CardID: "5678", Amount: 2500},
	}
	got := AggregateByCard(txs, SumAbsolute)
	want := []CardSummary{
		{LastDigits: "1234", TotalSpent: 3000, Cashback: 30},
		{LastDigits: "5678", TotalSpent: 4000, Cashback: 40},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d cards, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("card %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestAggregateByCardModes(t *testing.T) {
	txs := []Transaction{
		{CardID: "9000", Amount: -250.25},
		{CardID: "9000", Amount: -100},
	}

	signed := AggregateByCard(txs, SumSigned)
	if signed[0].TotalSpent != -350.25 {
		t.Fatalf("signed total: got %v", signed[0].TotalSpent)
	}
	if signed[0].Cashback != -4 { // floor(-350.25/100)
		t.Fatalf("signed cashback: got %v", signed[0].Cashback)
	}

	absolute := AggregateByCard(txs, SumAbsolute)
	if absolute[0].TotalSpent != 350.25 {
		t.Fatalf("absolute total: got %v", absolute[0].TotalSpent)
	}
	if absolute[0].Cashback != 3 {
		t.Fatalf("absolute cashback: got %v", absolute[0].Cashback)
	}
}

func TestAggregateByCardEmpty(t *testing.T) {
	if got := AggregateByCard(nil, SumAbsolute); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestAggregateByCardPreservesFirstSeenID(t *testing.T) {
	txs := []Transaction{
		{CardID: "*7197", Amount: 10},
		{CardID: "*7197", Amount: 20},
	}
	got := AggregateByCard(txs, SumAbsolute)
	if len(got) != 1 || got[0].LastDigits != "*7197" {
		t.Fatalf("unexpected result: %+v", got)
	}
}
