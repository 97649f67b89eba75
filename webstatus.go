package webstatus

import (
	"context"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"github.com/jpalmerr/webstatus/internal/checker"
	"github.com/jpalmerr/webstatus/internal/dispatch"
	"github.com/jpalmerr/webstatus/internal/store"
)

const (
	defaultTimeout    = 5 * time.Second
	defaultRetryDelay = 100 * time.Millisecond
)

// Runner is the main orchestrator for URL health-check runs.
//
// Runner owns the run configuration (pool size, per-attempt timeout,
// retry policy) and executes runs via [Runner.Run]. A Runner is immutable
// after construction and safe for concurrent use; each Run gets its own
// worker pool and HTTP connection pool.
//
// The typical lifecycle is:
//
//	r, err := webstatus.New(
//	    webstatus.WithWorkers(8),
//	    webstatus.WithTimeout(5 * time.Second),
//	    webstatus.WithMaxRetries(2),
//	)
//	if err != nil {
//	    slog.Error("failed to create runner", "error", err)
//	    os.Exit(1)
//	}
//
//	results, err := r.Run(ctx, urls)
type Runner struct {
	workers         int
	timeout         time.Duration
	maxRetries      int
	retryDelay      time.Duration
	logger          *slog.Logger
	resultCallbacks []func(CheckResult)
}

// New creates a [Runner] with the given options.
//
// All options have sensible defaults:
//   - Workers: number of logical CPUs
//   - Timeout: 5 seconds per attempt
//   - Max retries: 0 (one attempt per URL)
//   - Retry delay: 100 milliseconds
//
// Returns an error if any option is invalid.
func New(opts ...Option) (*Runner, error) {
	cfg := &runnerConfig{
		workers:    runtime.NumCPU(),
		timeout:    defaultTimeout,
		maxRetries: 0,
		retryDelay: defaultRetryDelay,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	// default to slog.Default() if no logger provided
	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Runner{
		workers:         cfg.workers,
		timeout:         cfg.timeout,
		maxRetries:      cfg.maxRetries,
		retryDelay:      cfg.retryDelay,
		logger:          logger,
		resultCallbacks: cfg.resultCallbacks,
	}, nil
}

// Run checks every URL in urls and returns one [CheckResult] per input
// URL, in completion order.
//
// Run blocks until every URL has resolved: each URL is attempted until it
// succeeds or its retry budget (maxRetries+1 attempts) is exhausted.
// Duplicate URLs are checked once per occurrence and produce separate
// results. An empty input returns an empty, non-nil slice immediately.
//
// Registered callbacks (see [WithResultCallback]) fire synchronously as
// each result completes, before Run returns.
//
// Cancelling ctx abandons URLs not yet picked up by a worker; in that
// case Run returns the results collected so far together with the
// context's error. Under normal completion the error is nil — individual
// check failures are reported per-URL via [Failure] outcomes, never as a
// run-level error.
func (r *Runner) Run(ctx context.Context, urls []string) ([]CheckResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger := r.logger.With("run_id", uuid.NewString())
	logger.Info("run starting",
		"urls", len(urls),
		"workers", r.workers,
		"timeout", r.timeout.String(),
		"max_retries", r.maxRetries,
	)

	client := checker.NewClient()
	defer client.Close()

	chk := checker.New(client, r.timeout, r.maxRetries, r.retryDelay)
	dispatcher := dispatch.New(chk.Check, r.workers, logger)
	runLog := store.NewMemoryLog(len(urls))

	// single consumer: store update first, then callbacks
	for res := range dispatcher.Dispatch(ctx, urls) {
		runLog.Append(res)

		if len(r.resultCallbacks) > 0 {
			public := toCheckResult(res)
			for _, cb := range r.resultCallbacks {
				invokeCallbackSafe(cb, public, logger)
			}
		}
	}

	collected := runLog.Snapshot()
	results := make([]CheckResult, 0, len(collected))
	for _, res := range collected {
		results = append(results, toCheckResult(res))
	}

	logger.Info("run complete", "results", len(results))

	if err := ctx.Err(); err != nil && len(results) < len(urls) {
		return results, err
	}
	return results, nil
}

// Workers returns the configured worker pool size.
func (r *Runner) Workers() int {
	return r.workers
}

// Timeout returns the configured per-attempt timeout.
func (r *Runner) Timeout() time.Duration {
	return r.timeout
}

// MaxRetries returns the configured retry count per URL.
func (r *Runner) MaxRetries() int {
	return r.maxRetries
}

// RetryDelay returns the configured wait between attempts.
func (r *Runner) RetryDelay() time.Duration {
	return r.retryDelay
}

// toCheckResult converts an internal checker result to the public type.
func toCheckResult(res checker.Result) CheckResult {
	var outcome Outcome
	if res.Err != nil {
		outcome = Failure{Message: res.Err.Error()}
	} else {
		outcome = Success{StatusCode: res.StatusCode}
	}

	return CheckResult{
		URL:       res.URL,
		Outcome:   outcome,
		Latency:   res.Latency,
		Attempts:  res.Attempts,
		CheckedAt: res.CheckedAt,
	}
}

// invokeCallbackSafe calls a result callback with panic recovery.
// Panics are logged with a correlation ID but do not propagate.
func invokeCallbackSafe(cb func(CheckResult), result CheckResult, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("result callback panicked",
				"correlation_id", uuid.NewString(),
				"panic", r,
				"url", result.URL,
			)
		}
	}()
	cb(result)
}
