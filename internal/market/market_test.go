package market

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"finreport/internal/log"
)

func testLogger() *log.Logger {
	return log.New(log.DefaultConfig())
}

func TestExchangeClientRates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("apikey") != "test-key" {
			t.Errorf("missing api key header")
		}
		switch r.URL.Query().Get("from") {
		case "USD":
			fmt.Fprint(w, `{"result": 93.5}`)
		case "EUR":
			fmt.Fprint(w, `{"result": 101.25}`)
		default:
			http.Error(w, "unknown currency", http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	c := NewExchangeClient("test-key", testLogger(), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	got, err := c.Rates(context.Background(), []string{"USD", "EUR", "XXX"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []CurrencyRate{
		{Currency: "USD", Rate: 93.5},
		{Currency: "EUR", Rate: 101.25},
		{Currency: "XXX", Rate: 0}, // failed lookup degrades to zero
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestExchangeClientEmptyInputMakesNoCalls(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewExchangeClient("k", testLogger(), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	got, err := c.Rates(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 || calls.Load() != 0 {
		t.Fatalf("expected no rows and no calls, got %d rows, %d calls", len(got), calls.Load())
	}
}

func TestExchangeClientCachesSuccess(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		fmt.Fprint(w, `{"result": 50}`)
	}))
	defer srv.Close()

	c := NewExchangeClient("k", testLogger(), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	for i := 0; i < 3; i++ {
		if _, err := c.Rates(context.Background(), []string{"USD"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if calls.Load() != 1 {
		t.Fatalf("expected 1 upstream call, got %d", calls.Load())
	}
}

func TestQuoteClientQuotes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbol") {
		case "AAPL":
			fmt.Fprint(w, `{"Global Quote": {"01. symbol": "AAPL", "05. price": "189.5000"}}`)
		case "EMPTY":
			fmt.Fprint(w, `{}`) // rate-limited responses come back bodyless
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	c := NewQuoteClient("k", testLogger(), WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
	got, err := c.Quotes(context.Background(), []string{"AAPL", "EMPTY", "FAIL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []StockPrice{
		{Symbol: "AAPL", Price: 189.5},
		{Symbol: "EMPTY", Price: 0},
		{Symbol: "FAIL", Price: 0},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestQuoteClientEmptyInput(t *testing.T) {
	c := NewQuoteClient("k", testLogger())
	got, err := c.Quotes(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}
