//go:build js && wasm

package store

import (
	"context"
	"fmt"
	"syscall/js"
)

// LocalStorage reads and writes window.localStorage. Values are stored as
// strings, so the blob must be valid UTF-8 (JSON always is).
type LocalStorage struct {
	ls js.Value
}

// NewLocalStorage binds to the page's localStorage object.
func NewLocalStorage() *LocalStorage {
	return &LocalStorage{ls: js.Global().Get("localStorage")}
}

func (l *LocalStorage) Get(ctx context.Context, key string) ([]byte, error) {
	v := l.ls.Call("getItem", key)
	if v.IsNull() || v.IsUndefined() {
		return nil, ErrNoValue
	}
	return []byte(v.String()), nil
}

// Set stores value under key. A quota or security error thrown by the
// browser is returned instead of panicking.
func (l *LocalStorage) Set(ctx context.Context, key string, value []byte) (err error) {
	defer func() {
		if r := recover(); r != nil {
			jerr, ok := r.(js.Error)
			if !ok {
				panic(r)
			}
			err = fmt.Errorf("localStorage.setItem %s: %w", key, jerr)
		}
	}()
	l.ls.Call("setItem", key, string(value))
	return nil
}
