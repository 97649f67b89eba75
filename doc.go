// Package webstatus provides a bounded-concurrency health checker for
// sets of URLs.
//
// Given a list of URLs, a [Runner] dispatches each to one of a fixed
// number of workers, performs an HTTP reachability check with a
// configurable timeout, retries failures a configurable number of times
// with a fixed inter-retry delay, and collects one structured
// [CheckResult] per URL.
//
// # Quick Start
//
//	r, _ := webstatus.New(
//	    webstatus.WithWorkers(8),
//	    webstatus.WithTimeout(5 * time.Second),
//	    webstatus.WithMaxRetries(2),
//	)
//
//	results, err := r.Run(ctx, []string{
//	    "https://example.com",
//	    "https://api.example.com/health",
//	})
//
// Each result carries a tagged [Outcome]: [Success] with the response's
// HTTP status code (any code counts — the server responded), or [Failure]
// with a human-readable cause when no response arrived. No individual
// check failure ever aborts the run.
//
// # Live Output
//
// Results can be observed as they complete, without waiting for the run
// to finish, by registering a callback:
//
//	r, _ := webstatus.New(
//	    webstatus.WithResultCallback(func(res webstatus.CheckResult) {
//	        fmt.Println(res.URL, res.Outcome)
//	    }),
//	)
//
// # Architecture
//
// The library consists of several internal packages (under internal/):
//
//   - internal/checker: single HTTP attempts and the retry wrapper
//   - internal/dispatch: fixed worker pool over a shared jobs channel
//   - internal/store: thread-safe collection of a run's results
//   - internal/report: status.json rendering and summary statistics
//
// The internal packages are not part of the public API and may change
// without notice. The cmd/webstatus CLI wraps this library with file
// input, live colored output, and JSON report writing.
package webstatus
