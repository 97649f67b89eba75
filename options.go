package webstatus

import (
	"errors"
	"log/slog"
	"time"
)

// runnerConfig holds mutable state during Runner construction.
type runnerConfig struct {
	workers         int
	timeout         time.Duration
	maxRetries      int
	retryDelay      time.Duration
	logger          *slog.Logger
	resultCallbacks []func(CheckResult)
}

// Option is a function that configures a [Runner] during construction.
//
// Option implements the functional options pattern, allowing optional
// configuration to be passed to [New] in a type-safe, extensible way.
// Options return an error if validation fails.
//
// Built-in options: [WithWorkers], [WithTimeout], [WithMaxRetries],
// [WithRetryDelay], [WithLogger], [WithResultCallback].
type Option func(*runnerConfig) error

// WithWorkers sets the fixed size of the worker pool.
//
// At most this many checks are in flight at any instant during a run.
// Defaults to the number of logical CPUs if not specified.
//
// Returns an error if the value is zero or negative.
func WithWorkers(n int) Option {
	return func(cfg *runnerConfig) error {
		if n <= 0 {
			return errors.New("worker count must be positive")
		}
		cfg.workers = n
		return nil
	}
}

// WithTimeout sets the per-attempt HTTP timeout.
//
// The timeout bounds a single attempt; each retry gets a fresh timeout.
// Defaults to 5 seconds if not specified.
//
// Returns an error if the duration is zero or negative.
func WithTimeout(d time.Duration) Option {
	return func(cfg *runnerConfig) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		cfg.timeout = d
		return nil
	}
}

// WithMaxRetries sets how many times a failed attempt is retried.
//
// A URL is attempted at most maxRetries+1 times in total. Zero (the
// default) means exactly one attempt per URL. Only failed requests are
// retried; any received HTTP status code is terminal.
//
// Returns an error if the value is negative.
func WithMaxRetries(n int) Option {
	return func(cfg *runnerConfig) error {
		if n < 0 {
			return errors.New("max retries cannot be negative")
		}
		cfg.maxRetries = n
		return nil
	}
}

// WithRetryDelay sets the fixed wait between consecutive attempts.
//
// Defaults to 100 milliseconds. A zero delay retries immediately, which
// is mainly useful in tests.
//
// Returns an error if the duration is negative.
func WithRetryDelay(d time.Duration) Option {
	return func(cfg *runnerConfig) error {
		if d < 0 {
			return errors.New("retry delay cannot be negative")
		}
		cfg.retryDelay = d
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Runner.
//
// This allows SDK consumers to control where logs are written and in what
// format. If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *runnerConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithResultCallback registers a function invoked as each result completes.
//
// The callback receives a [CheckResult] as soon as the URL's retry budget
// resolves, giving live per-URL observation while the run is still in
// progress. Multiple callbacks may be registered by calling
// WithResultCallback multiple times; they execute in registration order.
//
// Callbacks are invoked synchronously from a single goroutine, so a
// blocking callback delays subsequent result processing. Panics within
// callbacks are recovered and logged; they do not abort the run.
//
// Nil callbacks are silently ignored.
func WithResultCallback(cb func(CheckResult)) Option {
	return func(cfg *runnerConfig) error {
		if cb == nil {
			return nil // no-op for nil callback (safe to call)
		}
		cfg.resultCallbacks = append(cfg.resultCallbacks, cb)
		return nil
	}
}
