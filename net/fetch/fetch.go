// File: fetch.go
// Title: Fetch Client
// Description: Data and JSON retrieval over net/http.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-07
// Modified: 2026-10-09
//
// Change History:
// - 2026-10-07 v0.1.0: Initial implementation
// - 2026-10-09 v0.1.1: Metrics and request logging

package fetch

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/msto63/gopress/core/log"
)

// Client performs GET requests
type Client struct {
	http    *http.Client
	logger  *log.Logger
	metrics *Metrics
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.http = hc
		}
	}
}

// WithTimeout sets the timeout of the underlying http.Client
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		clone := *c.http
		clone.Timeout = d
		c.http = &clone
	}
}

// WithLogger sets the request logger
func WithLogger(logger *log.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics records request metrics on reg
func WithMetrics(reg prometheus.Registerer) Option {
	return func(c *Client) {
		c.metrics = NewMetrics(reg)
	}
}

// New creates a client using http.DefaultClient unless configured otherwise
func New(opts ...Option) *Client {
	c := &Client{
		http:   http.DefaultClient,
		logger: log.GetDefault().WithName("fetch"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Data GETs rawURL and returns the body of a 2xx response. The returned
// response has its body consumed and closed; it is also returned alongside
// ErrInvalidResponse so the status can be inspected.
func (c *Client) Data(ctx context.Context, rawURL string) ([]byte, *http.Response, error) {
	start := time.Now()
	fields := log.Field("url", rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, nil, c.failed(rawURL, err, start)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, nil, c.failed(rawURL, err, start)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		elapsed := time.Since(start)
		c.metrics.observe(OutcomeInvalidResponse, elapsed)
		c.logger.Warn("invalid response", fields.Merge(log.Fields{
			"status":      resp.StatusCode,
			"duration_ms": elapsed.Milliseconds(),
		}))
		return nil, resp, ErrInvalidResponse
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp, c.failed(rawURL, err, start)
	}

	elapsed := time.Since(start)
	c.metrics.observe(OutcomeOK, elapsed)
	c.logger.Debug("request completed", fields.Merge(log.Fields{
		"status":      resp.StatusCode,
		"bytes":       len(body),
		"duration_ms": elapsed.Milliseconds(),
	}))
	return body, resp, nil
}

func (c *Client) failed(rawURL string, err error, start time.Time) error {
	c.metrics.observe(OutcomeRequestFailed, time.Since(start))
	c.logger.WarnWithErr("request failed", err, log.Field("url", rawURL))
	return &RequestFailedError{URL: rawURL, Err: err}
}

// JSON fetches rawURL and decodes the body into T. Errors from Data pass
// through; decode errors are returned as produced by encoding/json.
func JSON[T any](ctx context.Context, c *Client, rawURL string) (T, error) {
	var v T
	body, _, err := c.Data(ctx, rawURL)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(body, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}

// ValidateOpenURL parses s and requires a scheme, the precondition for
// handing a URL to the platform opener
func ValidateOpenURL(s string) (*url.URL, bool) {
	u, err := url.Parse(s)
	if err != nil || u.Scheme == "" {
		return nil, false
	}
	return u, true
}
