package webstatus

import "time"

// CheckResult holds the final outcome of checking a single URL.
//
// CheckResult is produced exactly once per input URL, after the URL's
// retry budget is exhausted or an attempt succeeds, and is immutable
// after creation. When the same URL appears multiple times in the input,
// each occurrence produces its own CheckResult.
type CheckResult struct {
	// URL is the target URL as supplied by the caller.
	URL string

	// Outcome is the result of the last attempt: [Success] with the
	// response's status code, or [Failure] with the error message.
	Outcome Outcome

	// Latency is the elapsed wall-clock time of the last attempt only,
	// not cumulative across retries.
	Latency time.Duration

	// Attempts is the number of attempts made, between 1 and
	// maxRetries+1.
	Attempts int

	// CheckedAt is the completion time of the last attempt.
	CheckedAt time.Time
}
