package checker

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

const maxDrainSize = 1 << 20 // 1MB

// connection pooling limits to prevent resource exhaustion when checking many URLs
const (
	defaultMaxIdleConns        = 100
	defaultMaxIdleConnsPerHost = 10
	defaultMaxConnsPerHost     = 10
	defaultIdleConnTimeout     = 60 * time.Second
)

// Attempt holds the result of a single HTTP attempt against a URL.
//
// Err is nil whenever a response was received, regardless of status code.
// Latency is the wall-clock time of this attempt alone.
type Attempt struct {
	// StatusCode is the HTTP status code of the response.
	// Zero if the request failed before receiving a response.
	StatusCode int

	// Latency is the time taken by this attempt.
	Latency time.Duration

	// Err contains any error that prevented a response from arriving.
	Err error
}

// Client is an HTTP client wrapper for reachability checks.
//
// Client uses per-attempt timeouts via context rather than a global
// timeout, and drains response bodies so connections can be reused
// across attempts against the same host.
type Client struct {
	httpClient *http.Client
}

// NewClient creates a checking [Client].
//
// The client is configured with connection pooling limits to prevent
// resource exhaustion when a run contains many URLs on many hosts.
// Timeouts are applied per-attempt via the context in [Client.Do].
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			// no default timeout - timeouts are per-attempt via context
			Transport: &http.Transport{
				MaxIdleConns:        defaultMaxIdleConns,
				MaxIdleConnsPerHost: defaultMaxIdleConnsPerHost,
				MaxConnsPerHost:     defaultMaxConnsPerHost,
				IdleConnTimeout:     defaultIdleConnTimeout,
			},
		},
	}
}

// Do performs one GET attempt against url, bounded by timeout.
//
// Do always returns an Attempt; errors are captured in the Err field
// rather than returned separately. A response with any status code is a
// completed attempt with Err nil. The response body is drained (up to
// 1MB) and discarded so the underlying connection can be reused.
func (c *Client) Do(ctx context.Context, url string, timeout time.Duration) Attempt {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Attempt{
			Latency: time.Since(start),
			Err:     fmt.Errorf("invalid request: %w", err),
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Attempt{
			Latency: time.Since(start),
			Err:     fmt.Errorf("request failed: %w", err),
		}
	}
	defer func() { _ = resp.Body.Close() }()

	// drain the body so the connection can go back to the pool
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainSize))

	return Attempt{
		StatusCode: resp.StatusCode,
		Latency:    time.Since(start),
	}
}

// Close closes all idle connections in the client's connection pool.
//
// Safe to call multiple times. After Close, the client remains usable but
// new connections will be established as needed.
func (c *Client) Close() {
	if c == nil || c.httpClient == nil {
		return
	}
	if transport, ok := c.httpClient.Transport.(*http.Transport); ok {
		transport.CloseIdleConnections()
	}
}
