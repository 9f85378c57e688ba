// internal/game/types.go
//
// Core type definitions for a saved daily game.
// Defines:
//   - Board:  the guesses made so far, one row of tiles per guess.
//   - State:  coarse game status (playing/won/lost).
//   - Record: one day's saved game, as persisted in the history blob.

package game

import (
	"errors"
	"fmt"
)

// MaxRows is the number of guesses a player gets.
const MaxRows = 6

// FormatV1 tags every record written by this version of the save layer.
const FormatV1 = "v1"

var (
	ErrInvalidState = errors.New("game: invalid state")
	ErrInvalidBoard = errors.New("game: invalid board")
)

// State represents the status of a daily game.
// Possible values:
//   - "playing": the player still has guesses left.
//   - "won":     the answer was found.
//   - "lost":    all rows were used without finding the answer.
type State string

const (
	StatePlaying State = "playing"
	StateWon     State = "won"
	StateLost    State = "lost"
)

// ParseState converts the wire representation into a State.
func ParseState(s string) (State, error) {
	st := State(s)
	if !st.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidState, s)
	}
	return st, nil
}

func (s State) Valid() bool {
	switch s {
	case StatePlaying, StateWon, StateLost:
		return true
	}
	return false
}

// Finished reports whether no more guesses will be made.
func (s State) Finished() bool { return s == StateWon || s == StateLost }

// Board is the ordered list of guess rows. Each row is an ordered list of
// tiles; a tile is one printable glyph (a letter or a coloured square).
type Board [][]string

// Validate checks that every row has at least one non-empty tile.
// An empty board is valid: nothing has been guessed yet.
func (b Board) Validate() error {
	for i, row := range b {
		if len(row) == 0 {
			return fmt.Errorf("%w: row %d is empty", ErrInvalidBoard, i)
		}
		for j, tile := range row {
			if tile == "" {
				return fmt.Errorf("%w: row %d tile %d is empty", ErrInvalidBoard, i, j)
			}
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate stored rows.
func (b Board) Clone() Board {
	if b == nil {
		return nil
	}
	out := make(Board, len(b))
	for i, row := range b {
		out[i] = append([]string(nil), row...)
	}
	return out
}

// Record holds the saved state of a single day's game.
type Record struct {
	Format     string `json:"format"`
	GameNumber int    `json:"gameNumber"`
	Board      Board  `json:"board"`
	GameState  State  `json:"gameState"`
}

// NewRecord builds a current-format record.
func NewRecord(gameNumber int, board Board, state State) Record {
	if board == nil {
		board = Board{}
	}
	return Record{
		Format:     FormatV1,
		GameNumber: gameNumber,
		Board:      board,
		GameState:  state,
	}
}
