// internal/store/memory.go
//
// In-memory implementation of the KV interface.
// Characteristics:
//   - Values are copied on the way in and out; callers cannot alias them.
//   - Concurrency-safe via RWMutex.
//   - State is lost when the process exits.

package store

import (
	"context"
	"sync"
)

// Memory is a map-based KV implementation.
type Memory struct {
	mu   sync.RWMutex      // guards vals
	vals map[string][]byte // keyed by storage key
}

// NewMemory constructs an empty in-memory KV.
func NewMemory() *Memory {
	return &Memory{vals: make(map[string][]byte)}
}

// Get looks up key. Returns ErrNoValue if it was never set.
func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.vals[key]
	if !ok {
		return nil, ErrNoValue
	}
	return append([]byte(nil), v...), nil
}

// Set replaces the value under key.
func (m *Memory) Set(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vals[key] = append([]byte(nil), value...)
	return nil
}
