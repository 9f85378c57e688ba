// internal/history/history.go
//
// Per-day save records kept in a single serialized blob.
// Responsibilities:
//   - Load:   find the record for one game number (ErrNotFound if absent).
//   - Upsert: replace the record with the same game number in place, or
//             append it; the whole blob is rewritten on every call.
//   - All:    list every readable record in stored order.
//
// Notes:
//   - A missing blob is an empty history. A blob that is not a JSON array is
//     logged and also treated as empty; the next Upsert overwrites it.
//   - Records are dispatched on their "format" tag. Entries with an unknown
//     tag are preserved verbatim but never returned.
//   - There is no locking across read and write. Callers serialize access.

package history

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pintordle/internal/game"
	"github.com/robalobadob/pintordle/internal/store"
)

// DefaultKey is the storage key the browser build has always used.
const DefaultKey = "gameHistory"

var (
	ErrNotFound   = errors.New("history: record not found")
	ErrUnreadable = errors.New("history: unreadable record")
)

// Store reads and writes game records through a KV backend.
type Store struct {
	kv  store.KV
	key string
}

// New returns a Store that keeps its blob under key (DefaultKey if empty).
func New(kv store.KV, key string) *Store {
	if key == "" {
		key = DefaultKey
	}
	return &Store{kv: kv, key: key}
}

// Key reports the storage key in use.
func (s *Store) Key() string { return s.key }

// Load returns the record saved for gameNumber.
// Returns ErrNotFound when no entry has that number, or an error wrapping
// ErrUnreadable when one does but this version cannot decode it.
func (s *Store) Load(ctx context.Context, gameNumber int) (game.Record, error) {
	entries, err := s.read(ctx)
	if err != nil {
		return game.Record{}, err
	}
	i := find(entries, gameNumber)
	if i < 0 {
		return game.Record{}, ErrNotFound
	}
	if entries[i].rec == nil {
		return game.Record{}, fmt.Errorf("game %d: %w", gameNumber, entries[i].err)
	}
	r := *entries[i].rec
	r.Board = r.Board.Clone()
	return r, nil
}

// Upsert stores rec as the current-format record for rec.GameNumber.
// An existing entry keeps its position; otherwise rec is appended.
func (s *Store) Upsert(ctx context.Context, rec game.Record) error {
	if !rec.GameState.Valid() {
		return fmt.Errorf("%w: %q", game.ErrInvalidState, rec.GameState)
	}
	if err := rec.Board.Validate(); err != nil {
		return err
	}
	rec.Format = game.FormatV1
	if rec.Board == nil {
		rec.Board = game.Board{}
	}

	entries, err := s.read(ctx)
	if err != nil {
		return err
	}
	e, err := encodeRecord(rec)
	if err != nil {
		return fmt.Errorf("encode game %d: %w", rec.GameNumber, err)
	}
	if i := find(entries, rec.GameNumber); i >= 0 {
		entries[i] = e
	} else {
		entries = append(entries, e)
	}

	if err := s.kv.Set(ctx, s.key, encodeHistory(entries)); err != nil {
		log.Error().Err(err).Str("key", s.key).Int("gameNumber", rec.GameNumber).Msg("write history")
		return fmt.Errorf("write %s: %w", s.key, err)
	}
	log.Debug().Str("key", s.key).Int("gameNumber", rec.GameNumber).
		Str("gameState", string(rec.GameState)).Int("records", len(entries)).Msg("saved")
	return nil
}

// All returns every readable record in stored order.
func (s *Store) All(ctx context.Context) ([]game.Record, error) {
	entries, err := s.read(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]game.Record, 0, len(entries))
	for _, e := range entries {
		if e.rec != nil {
			r := *e.rec
			r.Board = r.Board.Clone()
			out = append(out, r)
		}
	}
	return out, nil
}

// read loads and splits the blob. Only storage failures are returned;
// a corrupt blob reads as empty.
func (s *Store) read(ctx context.Context) ([]entry, error) {
	blob, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, store.ErrNoValue) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.key, err)
	}
	entries, err := decodeHistory(blob)
	if err != nil {
		log.Warn().Err(err).Str("key", s.key).Int("bytes", len(blob)).Msg("corrupt history, starting empty")
		return nil, nil
	}
	for _, e := range entries {
		if e.err != nil {
			log.Warn().Err(e.err).Str("key", s.key).Int("gameNumber", e.number).Msg("skipping history entry")
		}
	}
	return entries, nil
}

// find returns the index of the first entry for gameNumber, or -1.
func find(entries []entry, gameNumber int) int {
	for i, e := range entries {
		if e.keyed && e.number == gameNumber {
			return i
		}
	}
	return -1
}
