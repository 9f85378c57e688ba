// internal/store/store.go
//
// Key/value blob storage for saved games.
// The save layer keeps its whole history as one serialized value under one
// key, the same way a browser page uses window.localStorage. Backends:
//   - memory.go:       map-based, for tests and throwaway sessions.
//   - file.go:         one file per key under a directory.
//   - sqlite.go:       a kv table in a local SQLite database.
//   - localstorage.go: window.localStorage (js/wasm builds only).
//
// Every Set replaces the whole value; there are no partial updates.

package store

import (
	"context"
	"errors"
)

// ErrNoValue is returned by Get when nothing is stored under the key.
var ErrNoValue = errors.New("store: no value")

// KV defines the persistence interface for serialized blobs.
type KV interface {
	// Get returns the value stored under key, or ErrNoValue.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, replacing anything already there.
	Set(ctx context.Context, key string, value []byte) error
}
