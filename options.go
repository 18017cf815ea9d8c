package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"
)

// Option configures a Client during construction in New.
//
// Options are applied before the request-id transport wrapper is
// installed, so transport-related options (debug logging, retry) end
// up underneath it. Options must be deterministic and side-effect free.
type Option func(*Client) error

// WithHTTPTimeout sets the underlying http.Client Timeout used by the SDK.
//
// Prefer per-request context deadlines where possible; this timeout is a
// coarse safety net that bounds the total time spent on a single HTTP
// request. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithHTTPClient replaces the underlying http.Client entirely. The
// request-id wrapper is still installed on top of its transport.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return fmt.Errorf("http client must not be nil")
		}
		c.http = hc
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response
// is logged when enabled is true.
//
// Do not enable this option in production environments: dumps include
// request bodies, and those carry session tokens.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}

// WithRetry wraps the client's transport with exponential-backoff
// retries for transient failures (network errors, 5xx, 408, 429).
//
// This is transport-level policy, invisible to the stores: a request
// that still fails after maxElapsed surfaces as the usual single
// failure. maxElapsed must be greater than zero.
func WithRetry(maxElapsed time.Duration) Option {
	return func(c *Client) error {
		if maxElapsed <= 0 {
			return fmt.Errorf("retry window must be > 0")
		}
		base := c.http.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		c.http.Transport = &retryTransport{base: base, maxElapsed: maxElapsed}
		return nil
	}
}
