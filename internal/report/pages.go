// Package report assembles the Main and Events page payloads from the
// filtered, aggregated transaction views.
package report

import (
	"context"
	"time"

	"finreport/internal/core"
	"finreport/internal/ledger"
	"finreport/internal/log"
	"finreport/internal/market"
	"finreport/internal/settings"
)

type (
	// MainPage is the month-to-date dashboard payload.
	MainPage struct {
		Greeting        string                `json:"greeting"`
		Cards           []core.CardSummary    `json:"cards"`
		TopTransactions []core.TopTransaction `json:"top_transactions"`
		CurrencyRates   []market.CurrencyRate `json:"currency_rates"`
		StockPrices     []market.StockPrice   `json:"stock_prices"`
	}

	// EventsPage is the period-based breakdown payload.
	EventsPage struct {
		Expenses      ExpensesBlock         `json:"expenses"`
		Income        IncomeBlock           `json:"income"`
		CurrencyRates []market.CurrencyRate `json:"currency_rates"`
		StockPrices   []market.StockPrice   `json:"stock_prices"`
	}

	ExpensesBlock struct {
		TotalAmount      float64               `json:"total_amount"`
		Main             []core.CategoryAmount `json:"main"`
		TransfersAndCash []core.CategoryAmount `json:"transfers_and_cash"`
	}

	IncomeBlock struct {
		TotalAmount float64               `json:"total_amount"`
		Main        []core.CategoryAmount `json:"main"`
	}
)

// Builder orchestrates the collaborators around the core transforms.
type Builder struct {
	source   ledger.Source
	rates    market.RateFetcher
	quotes   market.QuoteFetcher
	prefs    settings.Settings
	topCount int
	logger   *log.Logger
}

func NewBuilder(source ledger.Source, rates market.RateFetcher, quotes market.QuoteFetcher, prefs settings.Settings, logger *log.Logger) *Builder {
	return &Builder{
		source:   source,
		rates:    rates,
		quotes:   quotes,
		prefs:    prefs,
		topCount: core.DefaultTopCount,
		logger:   logger.WithComponent(log.ComponentReport),
	}
}

// SetTopCount overrides how many top transactions the Main page lists.
func (b *Builder) SetTopCount(n int) {
	if n > 0 {
		b.topCount = n
	}
}

// MainPage builds the dashboard payload for the month-to-date window ending
// at now. A ledger with no matching transactions produces a well-formed
// payload with empty sections.
func (b *Builder) MainPage(ctx context.Context, now time.Time) (MainPage, error) {
	txs, err := b.source.Load(ctx)
	if err != nil {
		return MainPage{}, err
	}

	filtered := core.FilterToDate(txs, now)
	b.logger.Info("Assembling main page",
		log.FieldReferenceTime, now.Format("2006-01-02 15:04:05"),
		log.FieldRowCount, len(filtered))

	page := MainPage{
		Greeting:        Greeting(now),
		Cards:           core.AggregateByCard(filtered, core.SumAbsolute),
		TopTransactions: core.TopTransactions(filtered, b.topCount),
	}
	if page.CurrencyRates, err = b.rates.Rates(ctx, b.prefs.Currencies); err != nil {
		return MainPage{}, err
	}
	if page.StockPrices, err = b.quotes.Quotes(ctx, b.prefs.Stocks); err != nil {
		return MainPage{}, err
	}
	return page, nil
}

// EventsPage builds the period breakdown payload relative to now. An invalid
// period token is surfaced; silently defaulting would corrupt the report
// semantics.
func (b *Builder) EventsPage(ctx context.Context, now time.Time, period core.Period) (EventsPage, error) {
	txs, err := b.source.Load(ctx)
	if err != nil {
		return EventsPage{}, err
	}

	filtered, err := core.FilterByPeriod(txs, now, period)
	if err != nil {
		return EventsPage{}, err
	}
	b.logger.Info("Assembling events page",
		log.FieldReferenceTime, now.Format("2006-01-02 15:04:05"),
		log.FieldPeriod, period.String(),
		log.FieldRowCount, len(filtered))

	page := EventsPage{
		Expenses: ExpensesBlock{
			TotalAmount:      core.TotalExpenses(filtered),
			Main:             core.MainExpenses(filtered),
			TransfersAndCash: core.TransfersAndCash(filtered),
		},
		Income: IncomeBlock{
			TotalAmount: core.TotalIncome(filtered),
			Main:        core.MainIncome(filtered),
		},
	}
	if page.CurrencyRates, err = b.rates.Rates(ctx, b.prefs.Currencies); err != nil {
		return EventsPage{}, err
	}
	if page.StockPrices, err = b.quotes.Quotes(ctx, b.prefs.Stocks); err != nil {
		return EventsPage{}, err
	}
	return page, nil
}
