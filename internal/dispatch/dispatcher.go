package dispatch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jpalmerr/webstatus/internal/checker"
)

// CheckFunc runs the full retry-wrapped check for one URL.
type CheckFunc func(ctx context.Context, url string) checker.Result

// Dispatcher fans a set of URLs out over a fixed pool of workers.
//
// The pool size is fixed for the lifetime of one run: workers are spawned
// when Dispatch is called and exit when the jobs channel is closed and
// drained. Duplicate URLs in the input are checked once per occurrence.
type Dispatcher struct {
	check   CheckFunc
	workers int
	logger  *slog.Logger
}

// New creates a [Dispatcher] with the given check function and pool size.
//
// workers must be at least 1; the caller validates configuration before
// constructing the dispatcher.
func New(check CheckFunc, workers int, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{
		check:   check,
		workers: workers,
		logger:  logger,
	}
}

// Dispatch checks all URLs concurrently and returns a streaming results
// channel.
//
// The returned channel emits one [checker.Result] per input URL in
// completion order and is closed once every worker has finished. With an
// empty URL list the channel is closed immediately and no workers are
// spawned. A pool larger than the URL count leaves the excess workers to
// observe the drained jobs channel and exit without running a check.
//
// Cancelling ctx abandons URLs that have not been picked up; in-flight
// checks still run to completion of their current attempt.
func (d *Dispatcher) Dispatch(ctx context.Context, urls []string) <-chan checker.Result {
	results := make(chan checker.Result, len(urls))

	if len(urls) == 0 {
		close(results)
		return results
	}

	jobs := make(chan string, len(urls))
	for _, url := range urls {
		jobs <- url
	}
	close(jobs)

	var wg sync.WaitGroup
	for i := 0; i < d.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for url := range jobs {
				select {
				case <-ctx.Done():
					return
				default:
				}

				result := d.check(ctx, url)
				d.logger.Debug("check completed",
					"url", result.URL,
					"attempts", result.Attempts,
					"latency_ms", result.Latency.Milliseconds(),
				)

				select {
				case results <- result:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
