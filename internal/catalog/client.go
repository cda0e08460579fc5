package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrFetchFailed is returned when the endpoint answers with a non-2xx status.
var ErrFetchFailed = errors.New("Failed to fetch movies")

// StatusError carries the HTTP status behind an ErrFetchFailed. Its message is
// the generic fetch failure; the code is only for logs.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string { return ErrFetchFailed.Error() }

func (e *StatusError) Unwrap() error { return ErrFetchFailed }

// Source supplies the movie listing. *Client is the production implementation.
type Source interface {
	FetchMovies(ctx context.Context) ([]Movie, error)
}

var _ Source = (*Client)(nil)

// Client fetches the movie listing from a single fixed endpoint.
type Client struct {
	endpoint  *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultEndpoint is the public listing the app reads when none is configured.
	DefaultEndpoint  = "https://dummyapi.online/api/movies"
	defaultUserAgent = "marquee/0.1"
	defaultTimeout   = 10 * time.Second
	maxBodyBytes     = 8 << 20
)

// Option customizes a Client.
type Option func(*Client)

// WithTimeout bounds each request. Non-positive values keep the default.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua = strings.TrimSpace(ua); ua != "" {
			c.userAgent = ua
		}
	}
}

// WithHTTPClient swaps the underlying transport client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// NewClient builds a Client for endpoint. An empty endpoint uses DefaultEndpoint.
func NewClient(endpoint string, opts ...Option) (*Client, error) {
	u, err := parseEndpoint(endpoint)
	if err != nil {
		return nil, err
	}
	c := &Client{
		endpoint:  u,
		http:      &http.Client{Timeout: defaultTimeout},
		userAgent: defaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Endpoint returns the URL the client reads from.
func (c *Client) Endpoint() string {
	if c == nil || c.endpoint == nil {
		return ""
	}
	return c.endpoint.String()
}

// FetchMovies issues one GET against the endpoint and returns the valid
// records in response order.
func (c *Client) FetchMovies(ctx context.Context) ([]Movie, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	return DecodeMovies(body)
}

func parseEndpoint(endpoint string) (*url.URL, error) {
	trimmed := strings.TrimSpace(endpoint)
	if trimmed == "" {
		trimmed = DefaultEndpoint
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse endpoint %q: %w", endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("parse endpoint %q: unsupported scheme %q", endpoint, u.Scheme)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse endpoint %q: missing host", endpoint)
	}
	u.Fragment = ""
	return u, nil
}
