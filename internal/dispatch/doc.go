// Package dispatch runs checks over a fixed pool of workers.
//
// A Dispatcher seeds a jobs channel with every input URL, closes it, and
// lets exactly workerCount goroutines pull until the channel is drained.
// Each worker runs the check function and emits its result to a streaming
// results channel, which closes once every worker has exited. Results
// arrive in completion order; the only ordering guarantee is one result
// per input URL before the channel closes.
//
// This is an internal package; its API may change without notice.
package dispatch
