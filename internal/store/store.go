package store

import "github.com/jpalmerr/webstatus/internal/checker"

// Log defines the interface for collecting results during a run.
//
// Log implementations must tolerate concurrent appends without losing or
// duplicating entries: the run invariant is one stored result per input
// URL, regardless of how many workers submit concurrently.
type Log interface {
	// Append records a completed check result.
	Append(result checker.Result)

	// Snapshot returns all results appended so far, in append order.
	// The returned slice is a copy; modifications do not affect the log.
	Snapshot() []checker.Result

	// Len returns the number of results appended so far.
	Len() int
}

var _ Log = (*MemoryLog)(nil)
