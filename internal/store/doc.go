// Package store collects check results for the duration of one run.
//
// It provides an append-only, thread-safe run log: workers' results are
// appended in completion order and the final snapshot is returned to the
// caller when the run ends. Nothing is persisted beyond the run.
//
// This is an internal package; its API may change without notice.
package store
