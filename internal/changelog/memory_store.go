package changelog

import (
	"fmt"
	"sync"

	"ledit/internal/errs"
)

// DefaultCapacity is the entry limit used when a MemoryStore is configured
// without one.
const DefaultCapacity = 1024

// MemoryStore implements Store with a single in-memory buffer shared by all
// files. It is volatile and capped: once full, further appends are rejected
// with ErrLogFull and nothing is evicted.
type MemoryStore struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
}

// NewMemoryStore creates a MemoryStore holding at most capacity entries.
func NewMemoryStore(capacity int) *MemoryStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &MemoryStore{capacity: capacity}
}

func (ms *MemoryStore) Append(filename string, e Entry) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if len(ms.entries) >= ms.capacity {
		return errs.NewPathError("append changelog", filename,
			fmt.Errorf("%w: %d entries", errs.ErrLogFull, ms.capacity))
	}
	e.Filename = filename
	ms.entries = append(ms.entries, e)
	return nil
}

func (ms *MemoryStore) ReadAll(filename string) ([]Entry, error) {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	out := []Entry{}
	for _, e := range ms.entries {
		if e.Filename == filename {
			out = append(out, e)
		}
	}
	return out, nil
}

// Len returns the number of entries held across all files.
func (ms *MemoryStore) Len() int {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	return len(ms.entries)
}

// Capacity returns the maximum number of entries.
func (ms *MemoryStore) Capacity() int {
	return ms.capacity
}
