// Package l1beat is the typed client for the dashboard's backend metrics
// API. Every accessor is total: whatever goes wrong underneath (network,
// retries exhausted, malformed envelope), callers get a usable value of the
// declared shape, never an error. Anomalies are logged and degrade to the
// accessor's fallback.
package l1beat

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Ayash-Bera/L1Beat-frontend/internal/cache"
	"github.com/Ayash-Bera/L1Beat-frontend/internal/fetch"
)

type Client struct {
	baseURL string
	fetch   *fetch.Client
	cache   cache.Store
	logger  *zap.Logger
	now     func() time.Time

	dataTTL   time.Duration
	healthTTL time.Duration
}

type Option func(*Client)

// WithTTLs overrides the dataset and health cache windows.
func WithTTLs(data, health time.Duration) Option {
	return func(c *Client) {
		if data > 0 {
			c.dataTTL = data
		}
		if health > 0 {
			c.healthTTL = health
		}
	}
}

// WithClock injects the time source used for cache-busting and freshness
// computation.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		if now != nil {
			c.now = now
		}
	}
}

func NewClient(baseURL string, fetcher *fetch.Client, store cache.Store, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		fetch:     fetcher,
		cache:     store,
		logger:    logger,
		now:       time.Now,
		dataTTL:   cache.DefaultTTL,
		healthTTL: cache.HealthTTL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// endpoint builds a backend URL. Every request carries a cache-busting
// timestamp so CDNs between us and the backend never serve stale data; the
// application-level cache is the only cache that should apply.
func (c *Client) endpoint(path string, params url.Values) string {
	if params == nil {
		params = url.Values{}
	}
	params.Set("t", strconv.FormatInt(c.now().UnixMilli(), 10))
	return fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())
}

// rawEndpoint builds a backend URL without the cache-busting parameter, for
// the endpoints that reject unknown query parameters.
func (c *Client) rawEndpoint(path string) string {
	return c.baseURL + path
}
