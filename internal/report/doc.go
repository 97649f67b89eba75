// Package report renders completed runs for downstream consumers.
//
// It serializes results to the status.json wire format, where each entry
// carries the URL, a tagged status ({"Ok": code} or {"Err": "message"}),
// the response time in milliseconds, and the completion timestamp. It
// also computes min/max/average response-time statistics over successful
// results.
//
// This is an internal package; its API may change without notice.
package report
