package market

import (
	"net/http"
	"time"
)

type clientOptions struct {
	baseURL  string
	httpc    *http.Client
	cacheTTL time.Duration
}

// Option customizes a market client; mainly used to point tests at an
// httptest server.
type Option func(*clientOptions)

func WithBaseURL(u string) Option {
	return func(o *clientOptions) { o.baseURL = u }
}

func WithHTTPClient(c *http.Client) Option {
	return func(o *clientOptions) { o.httpc = c }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(o *clientOptions) { o.cacheTTL = ttl }
}

func applyOptions(defaults clientOptions, opts []Option) clientOptions {
	o := defaults
	for _, opt := range opts {
		opt(&o)
	}
	if o.httpc == nil {
		o.httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return o
}
