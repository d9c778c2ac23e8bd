package market

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/errgroup"

	"finreport/internal/log"
)

const defaultQuoteBaseURL = "https://www.alphavantage.co"

// QuoteClient fetches latest stock prices from the Alpha Vantage
// GLOBAL_QUOTE endpoint. Quotes move intraday, so the cache is short-lived.
type QuoteClient struct {
	apiKey string
	opts   clientOptions
	cache  *gocache.Cache
	logger *log.Logger
}

var _ QuoteFetcher = (*QuoteClient)(nil)

func NewQuoteClient(apiKey string, logger *log.Logger, opts ...Option) *QuoteClient {
	o := applyOptions(clientOptions{
		baseURL:  defaultQuoteBaseURL,
		cacheTTL: 10 * time.Minute,
	}, opts)
	return &QuoteClient{
		apiKey: apiKey,
		opts:   o,
		cache:  gocache.New(o.cacheTTL, 2*o.cacheTTL),
		logger: logger.WithComponent(log.ComponentMarket),
	}
}

// Quotes looks up every symbol concurrently and returns one row per ticker
// in input order. Failed lookups carry a zero price.
func (c *QuoteClient) Quotes(ctx context.Context, symbols []string) ([]StockPrice, error) {
	if len(symbols) == 0 {
		return nil, nil
	}

	out := make([]StockPrice, len(symbols))
	g, ctx := errgroup.WithContext(ctx)
	for i, symbol := range symbols {
		out[i].Symbol = symbol
		g.Go(func() error {
			price, err := c.quote(ctx, symbol)
			if err != nil {
				return err
			}
			out[i].Price = price
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *QuoteClient) quote(ctx context.Context, symbol string) (float64, error) {
	cacheKey := "quote:" + symbol
	if v, found := c.cache.Get(cacheKey); found {
		return v.(float64), nil
	}

	q := url.Values{}
	q.Set("function", "GLOBAL_QUOTE")
	q.Set("symbol", symbol)
	q.Set("apikey", c.apiKey)
	u := c.opts.baseURL + "/query?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.logger.Warn("Failed to build quote request", log.FieldSymbol, symbol, log.FieldError, err.Error())
		return 0, nil
	}

	resp, err := c.opts.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return 0, ctx.Err()
		}
		c.logger.Warn("Stock quote request failed", log.FieldSymbol, symbol, log.FieldError, err.Error())
		return 0, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Stock quote API returned non-OK status",
			log.FieldSymbol, symbol, "status", resp.Status)
		return 0, nil
	}

	// Alpha Vantage nests the quote under "Global Quote" and renders every
	// value, the price included, as a string.
	var body struct {
		GlobalQuote map[string]string `json:"Global Quote"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		c.logger.Warn("Failed to decode stock quote response", log.FieldSymbol, symbol, log.FieldError, err.Error())
		return 0, nil
	}

	price, err := strconv.ParseFloat(body.GlobalQuote["05. price"], 64)
	if err != nil {
		c.logger.Warn("Stock quote response has no parsable price", log.FieldSymbol, symbol)
		return 0, nil
	}

	c.cache.Set(cacheKey, price, gocache.DefaultExpiration)
	return price, nil
}
