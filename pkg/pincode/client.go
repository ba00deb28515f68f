package pincode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the India endpoint of the Zippopotam postal code API.
	DefaultBaseURL = "https://api.zippopotam.us/in"

	maxResponseSize = 1 << 20
)

// Client looks pincodes up over HTTP. Transient upstream failures are
// retried with exponential backoff; repeated failures open a circuit
// breaker that short-circuits lookups until the cooldown passes.
type Client struct {
	baseURL     string
	http        *http.Client
	retries     int
	backoffBase time.Duration
	backoffMax  time.Duration
	breaker     *breaker
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL points the client at a different API root. The pincode is
// appended as the last path segment.
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		if u != "" {
			c.baseURL = strings.TrimRight(u, "/")
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithRetries sets how many times a failed request is retried.
func WithRetries(n int) ClientOption {
	return func(c *Client) {
		c.retries = max(n, 0)
	}
}

// WithBackoff sets the first retry pause and the cap for later ones.
func WithBackoff(initial, maxInterval time.Duration) ClientOption {
	return func(c *Client) {
		c.backoffBase = initial
		c.backoffMax = maxInterval
	}
}

// WithBreaker opens the circuit after threshold consecutive failed lookups
// and keeps it open for cooldown. A non-positive threshold disables it.
func WithBreaker(threshold int, cooldown time.Duration) ClientOption {
	return func(c *Client) {
		if threshold <= 0 {
			c.breaker = nil
			return
		}
		c.breaker = newBreaker(threshold, cooldown, nil)
	}
}

// NewClient creates a Client for the public Zippopotam API.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL:     DefaultBaseURL,
		http:        &http.Client{Timeout: 5 * time.Second},
		retries:     2,
		backoffBase: 200 * time.Millisecond,
		backoffMax:  2 * time.Second,
		breaker:     newBreaker(5, 30*time.Second, nil),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClientFromConfig creates a Client from cfg. Options are applied after cfg.
func NewClientFromConfig(cfg Config, opts ...ClientOption) *Client {
	base := []ClientOption{
		WithBaseURL(cfg.BaseURL),
		WithRetries(cfg.RetryAttempts),
		WithBreaker(cfg.BreakerThreshold, cfg.BreakerCooldown),
	}
	if cfg.Timeout > 0 {
		base = append(base, WithHTTPClient(&http.Client{Timeout: cfg.Timeout}))
	}
	return NewClient(append(base, opts...)...)
}

// Cities implements Directory.
func (c *Client) Cities(ctx context.Context, pin string) ([]string, error) {
	pin, err := Normalize(pin)
	if err != nil {
		return nil, err
	}

	if c.breaker != nil && !c.breaker.allow() {
		return nil, errors.Join(ErrLookupFailed, ErrCircuitOpen)
	}

	cities, err := c.fetchWithRetry(ctx, pin)
	if c.breaker != nil {
		switch {
		case err == nil || errors.Is(err, ErrNotFound):
			c.breaker.success()
		case ctx.Err() != nil:
			// the caller gave up; says nothing about the upstream
			c.breaker.release()
		default:
			c.breaker.failure()
		}
	}
	return cities, err
}

func (c *Client) fetchWithRetry(ctx context.Context, pin string) ([]string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.retries; attempt++ {
		if attempt > 0 {
			timer := time.NewTimer(backoff(attempt, c.backoffBase, c.backoffMax))
			select {
			case <-ctx.Done():
				timer.Stop()
				return nil, errors.Join(ErrLookupFailed, ctx.Err(), lastErr)
			case <-timer.C:
			}
		}

		cities, err := c.fetch(ctx, pin)
		if err == nil || errors.Is(err, ErrNotFound) {
			return cities, err
		}
		lastErr = err
		if !retryable(err) || ctx.Err() != nil {
			break
		}
	}
	return nil, errors.Join(ErrLookupFailed, lastErr)
}

type lookupResponse struct {
	PostCode string `json:"post code"`
	Country  string `json:"country"`
	Places   []struct {
		Name  string `json:"place name"`
		State string `json:"state"`
	} `json:"places"`
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func retryable(err error) bool {
	var se *statusError
	if errors.As(err, &se) {
		return se.code == http.StatusTooManyRequests || se.code >= http.StatusInternalServerError
	}
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}

func (c *Client) fetch(ctx context.Context, pin string) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+pin, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, &statusError{code: resp.StatusCode}
	}

	var body lookupResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	names := make([]string, 0, len(body.Places))
	for _, p := range body.Places {
		names = append(names, p.Name)
	}
	cities := normalizeCities(names)
	if len(cities) == 0 {
		return nil, ErrNotFound
	}
	return cities, nil
}
