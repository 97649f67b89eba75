package store

import (
	"sync"

	"github.com/jpalmerr/webstatus/internal/checker"
)

// MemoryLog is an in-memory implementation of [Log].
//
// MemoryLog is a mutex-guarded append-only slice. Append order is
// completion order, which may differ from input order when multiple
// workers finish out of sequence.
type MemoryLog struct {
	mu      sync.RWMutex
	results []checker.Result
}

// NewMemoryLog creates an empty in-memory [Log].
//
// If capacity is positive it is used as the initial slice capacity,
// avoiding reallocation when the run size is known up front.
func NewMemoryLog(capacity int) *MemoryLog {
	if capacity < 0 {
		capacity = 0
	}
	return &MemoryLog{
		results: make([]checker.Result, 0, capacity),
	}
}

// Append records a completed check result.
func (m *MemoryLog) Append(result checker.Result) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results = append(m.results, result)
}

// Snapshot returns a copy of all results appended so far.
func (m *MemoryLog) Snapshot() []checker.Result {
	m.mu.RLock()
	defer m.mu.RUnlock()

	cp := make([]checker.Result, len(m.results))
	copy(cp, m.results)
	return cp
}

// Len returns the number of results appended so far.
func (m *MemoryLog) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.results)
}
