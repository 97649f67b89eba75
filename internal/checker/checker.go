package checker

import (
	"context"
	"time"
)

// Result is the final retry-wrapped outcome of checking one URL.
//
// Result reflects the last attempt only: StatusCode and Err come from the
// final attempt, and Latency measures that attempt alone, not the
// cumulative time across retries.
type Result struct {
	// URL is the target URL as supplied.
	URL string

	// StatusCode is the HTTP status code of the last attempt.
	// Only meaningful when Err is nil.
	StatusCode int

	// Err is the last attempt's error, nil if it received a response.
	Err error

	// Latency is the wall-clock time of the last attempt.
	Latency time.Duration

	// Attempts is the number of attempts made (1 to maxRetries+1).
	Attempts int

	// CheckedAt is when the last attempt completed.
	CheckedAt time.Time
}

// AttemptFunc performs a single attempt against a URL.
//
// The production implementation is [Client.Do] with a fixed timeout; tests
// substitute stubs to observe attempt counts and inject outcomes.
type AttemptFunc func(ctx context.Context, url string) Attempt

// Checker wraps single attempts with the retry policy.
//
// A failed attempt is retried after a fixed delay until either an attempt
// succeeds or maxRetries+1 total attempts have been made. Every failure
// follows the same policy: a malformed URL burns through its retry budget
// like any transport error, with no special-casing.
type Checker struct {
	attempt    AttemptFunc
	maxRetries int
	retryDelay time.Duration
}

// New creates a [Checker] that attempts URLs via client with the given
// per-attempt timeout.
//
// maxRetries is the number of retries after the first attempt; zero means
// exactly one attempt. retryDelay is the fixed wait between consecutive
// attempts.
func New(client *Client, timeout time.Duration, maxRetries int, retryDelay time.Duration) *Checker {
	return &Checker{
		attempt: func(ctx context.Context, url string) Attempt {
			return client.Do(ctx, url, timeout)
		},
		maxRetries: maxRetries,
		retryDelay: retryDelay,
	}
}

// Check runs the retry loop for a single URL and returns its [Result].
//
// Check returns as soon as an attempt receives a response. If the context
// is cancelled during an inter-attempt delay, the last failure is returned
// without consuming the remaining budget.
func (c *Checker) Check(ctx context.Context, url string) Result {
	var last Attempt
	attempts := 0

	for {
		last = c.attempt(ctx, url)
		attempts++

		if last.Err == nil || attempts > c.maxRetries {
			break
		}
		if !c.waitRetry(ctx) {
			break
		}
	}

	return Result{
		URL:        url,
		StatusCode: last.StatusCode,
		Err:        last.Err,
		Latency:    last.Latency,
		Attempts:   attempts,
		CheckedAt:  time.Now(),
	}
}

// waitRetry blocks for the retry delay. Returns false if the context is
// cancelled before the delay elapses.
func (c *Checker) waitRetry(ctx context.Context) bool {
	if c.retryDelay <= 0 {
		return ctx.Err() == nil
	}

	t := time.NewTimer(c.retryDelay)
	defer t.Stop()

	select {
	case <-t.C:
		return true
	case <-ctx.Done():
		return false
	}
}
