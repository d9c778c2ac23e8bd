// Package market fetches currency exchange rates and stock quotes from
// external HTTP APIs for report enrichment.
//
// The fetchers follow a zero-on-failure policy: an individual lookup that
// fails yields a 0.0 rate or price for that entry instead of aborting the
// batch, and an empty input list yields an empty result without any network
// calls. Reports therefore always assemble, just with zeroed market data.
package market

import "context"

type (
	// CurrencyRate is one exchange-rate row of a report page.
	CurrencyRate struct {
		Currency string  `json:"currency"`
		Rate     float64 `json:"rate"`
	}

	// StockPrice is one stock-quote row of a report page.
	StockPrice struct {
		Symbol string  `json:"symbol"`
		Price  float64 `json:"price"`
	}

	// RateFetcher returns one row per requested currency code, in input
	// order. The error return is reserved for context cancellation.
	RateFetcher interface {
		Rates(ctx context.Context, currencies []string) ([]CurrencyRate, error)
	}

	// QuoteFetcher returns one row per requested ticker symbol, in input
	// order. The error return is reserved for context cancellation.
	QuoteFetcher interface {
		Quotes(ctx context.Context, symbols []string) ([]StockPrice, error)
	}
)
