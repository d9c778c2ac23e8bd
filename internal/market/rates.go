package market

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"finreport/internal/log"
)

const defaultExchangeBaseURL = "https://api.apilayer.com/exchangerates_data"

// rateTarget is the currency all rates are quoted against.
const rateTarget = "RUB"

// ExchangeClient fetches conversion rates from the apilayer exchangerates
// API. Successful lookups are cached for a day; rates barely matter
// intraday for a spending report.
type ExchangeClient struct {
	apiKey string
	opts   clientOptions
	cache  *gocache.Cache
	logger *log.Logger
}

var _ RateFetcher = (*ExchangeClient)(nil)

func NewExchangeClient(apiKey string, logger *log.Logger, opts ...Option) *ExchangeClient {
	o := applyOptions(clientOptions{
		baseURL:  defaultExchangeBaseURL,
		cacheTTL: 24 * time.Hour,
	}, opts)
	return &ExchangeClient{
		apiKey: apiKey,
		opts:   o,
		cache:  gocache.New(o.cacheTTL, 2*o.cacheTTL),
		logger: logger.WithComponent(log.ComponentMarket),
	}
}

// Rates looks up every currency concurrently and returns one row per code in
// input order. Failed lookups carry a zero rate.
func (c *ExchangeClient) Rates(ctx context.Context, currencies []string) ([]CurrencyRate, error) {
	if len(currencies) == 0 {
		return nil, nil
	}

	out := make([]CurrencyRate, len(currencies))
	g, ctx := errgroup.WithContext(ctx)
	for i, currency := range currencies {
		out[i].Currency = currency
		g.Go(func() error {
			rate, err := c.rate(ctx, currency)
			if err != nil {
				return err
			}
			out[i].Rate = rate
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// rate returns the conversion rate for one currency, zero on failure. The
// returned error is non-nil only when the context is done.
func (c *ExchangeClient) rate(ctx context.Context, currency string) (float64, error) {
	cacheKey := "rate:" + currency
	if v, found := c.cache.Get(cacheKey); found {
		return v.(float64), nil
	}

	u := fmt.Sprintf("%s/convert?to=%s&from=%s&amount=1",
		c.opts.baseURL, rateTarget, url.QueryEscape(currency))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.logger.Warn("Failed to build rate request", log.FieldCurrency, currency, log.FieldError, err.Error())
		return 0, nil
	}
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.opts.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		c.logger.Warn("Exchange rate request failed", log.FieldCurrency, currency, log.FieldError, err.Error())
		return 0, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Exchange rate API returned non-OK status",
			log.FieldCurrency, currency, "status", resp.Status)
		return 0, nil
	}

	var body struct {
		Result float64 `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("Failed to decode exchange rate response", log.FieldCurrency, currency, log.FieldError, err.Error())
		return 0, nil
	}

	c.cache.Set(cacheKey, body.Result, gocache.DefaultExpiration)
	return body.Result, nil
}
