package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pintordle/internal/config"
	"github.com/robalobadob/pintordle/internal/store"
)

// openKV builds the configured storage backend. The returned close func is
// never nil.
func openKV(cfg *config.Config) (store.KV, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Backend {
	case config.BackendMemory:
		log.Warn().Msg("memory store: saves are discarded on exit")
		return store.NewMemory(), noop, nil

	case config.BackendFile:
		f, err := store.NewFile(cfg.FileDir)
		if err != nil {
			return nil, noop, err
		}
		log.Debug().Str("dir", cfg.FileDir).Msg("file store")
		return f, noop, nil

	case config.BackendSQLite:
		s, err := store.OpenSQLite(cfg.DBPath)
		if err != nil {
			return nil, noop, fmt.Errorf("open %s: %w", cfg.DBPath, err)
		}
		log.Debug().Str("db", cfg.DBPath).Msg("sqlite store")
		return s, s.Close, nil
	}
	return nil, noop, fmt.Errorf("unknown store backend %q", cfg.Backend)
}
