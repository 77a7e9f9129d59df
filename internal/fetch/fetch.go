package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Error classes for failed requests. All are retryable except
// ErrCrossOrigin, which short-circuits straight to the caller's fallback.
var (
	ErrServerTimeout      = errors.New("server timeout")
	ErrRateLimited        = errors.New("rate limited")
	ErrInvalidContentType = errors.New("invalid content type")
	ErrCrossOrigin        = errors.New("cross-origin request blocked")
)

const (
	DefaultRetries       = 3
	DefaultBackoffFactor = 2.0
	DefaultTimeout       = 30 * time.Second

	baseBackoff = time.Second
	maxBackoff  = 10 * time.Second
	maxJitter   = time.Second
)

// Client issues retry-wrapped GET requests against the backend API.
type Client struct {
	httpClient    *http.Client
	retries       int
	backoffFactor float64
	timeout       time.Duration
	logger        *zap.Logger
	sleep         func(ctx context.Context, d time.Duration) error
}

type Option func(*Client)

func WithRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.retries = n
		}
	}
}

func WithBackoffFactor(f float64) Option {
	return func(c *Client) {
		if f >= 1 {
			c.backoffFactor = f
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
			c.httpClient.Timeout = d
		}
	}
}

// WithTransport replaces the underlying round tripper. Tests use this to
// fake the backend.
func WithTransport(rt http.RoundTripper) Option {
	return func(c *Client) {
		c.httpClient.Transport = rt
	}
}

// WithSleep replaces the inter-attempt sleep. Tests use this to skip real
// backoff delays.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) {
		c.sleep = sleep
	}
}

func New(logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	c := &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retries:       DefaultRetries,
		backoffFactor: DefaultBackoffFactor,
		timeout:       DefaultTimeout,
		logger:        logger,
		sleep:         sleepContext,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetJSON fetches url and decodes the JSON body into out. Transient
// failures (timeouts, 5xx, 429, non-JSON bodies) are retried with
// exponential backoff plus jitter; cross-origin failures are not retried at
// all. The error after exhausted retries is for the accessor layer to turn
// into its fallback value; it never reaches callers of accessors.
func (c *Client) GetJSON(ctx context.Context, url string, out interface{}) error {
	log := c.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("url", url),
	)

	var lastErr error
	for attempt := 0; attempt < c.retries; attempt++ {
		if attempt > 0 {
			delay := c.backoffDelay(attempt - 1)
			log.Warn("retrying request",
				zap.Int("attempt", attempt+1),
				zap.Int("max_attempts", c.retries),
				zap.Duration("backoff", delay),
				zap.Error(lastErr),
			)
			if err := c.sleep(ctx, delay); err != nil {
				return err
			}
		}

		err := c.doRequest(ctx, url, out)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrCrossOrigin) {
			log.Warn("cross-origin failure, not retrying", zap.Error(err))
			return err
		}
		lastErr = err
	}

	log.Error("request failed after all retries",
		zap.Int("attempts", c.retries),
		zap.Error(lastErr),
	)
	return fmt.Errorf("request failed after %d attempts: %w", c.retries, lastErr)
}

// doRequest performs a single attempt with its own timeout so a hung
// request cannot outlive the attempt.
func (c *Client) doRequest(ctx context.Context, url string, out interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isCrossOrigin(err) {
			return fmt.Errorf("%w: %v", ErrCrossOrigin, err)
		}
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusGatewayTimeout:
		return fmt.Errorf("%w (status 504)", ErrServerTimeout)
	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%w (status 429)", ErrRateLimited)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		return fmt.Errorf("%w: %q", ErrInvalidContentType, contentType)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// backoffDelay is min(base * factor^attempt, 10s) plus up to 1s of jitter.
func (c *Client) backoffDelay(attempt int) time.Duration {
	d := time.Duration(float64(baseBackoff) * math.Pow(c.backoffFactor, float64(attempt)))
	if d > maxBackoff {
		d = maxBackoff
	}
	return d + time.Duration(rand.Int63n(int64(maxJitter)))
}

func isCrossOrigin(err error) bool {
	if errors.Is(err, ErrCrossOrigin) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "cors") || strings.Contains(msg, "cross-origin")
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
