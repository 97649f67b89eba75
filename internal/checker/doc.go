// Package checker performs HTTP reachability checks.
//
// It provides two layers:
//
//   - Client: a pooled HTTP client that performs a single attempt against
//     a URL under a per-attempt timeout
//   - Checker: the retry wrapper that repeats attempts with a fixed delay
//     until one succeeds or the attempt budget is exhausted
//
// Any received HTTP status code completes an attempt successfully; only
// requests that never produce a response (DNS failure, refused connection,
// timeout, malformed URL) are retried.
//
// This is an internal package; its API may change without notice.
package checker
