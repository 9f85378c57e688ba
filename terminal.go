package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/robalobadob/pintordle/internal/daily"
	"github.com/robalobadob/pintordle/internal/game"
)

// terminalUI is the command-line stand-in for the game UI. It keeps what
// the core restored so commands can print or share it.
type terminalUI struct {
	board game.Board
	state game.State
}

func (t *terminalUI) Load(board game.Board, state game.State) {
	t.board, t.state = board, state
}

// renderRecord prints a one-game summary followed by the board.
func renderRecord(w io.Writer, gameNumber int, board game.Board, state game.State) {
	fmt.Fprintf(w, "Game %d (%s): %s, %d/%d rows\n",
		gameNumber, daily.DateKey(daily.DayStart(gameNumber)), state, len(board), game.MaxRows)
	for _, row := range board {
		fmt.Fprintf(w, "  %s\n", strings.Join(row, " "))
	}
}

// parseRow splits a command-line row into tiles: on commas when present,
// otherwise one tile per rune.
func parseRow(s string) ([]string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty row", game.ErrInvalidBoard)
	}
	var tiles []string
	if strings.Contains(s, ",") {
		for _, p := range strings.Split(s, ",") {
			tiles = append(tiles, strings.TrimSpace(p))
		}
	} else {
		for _, r := range s {
			tiles = append(tiles, string(r))
		}
	}
	return tiles, nil
}

func parseBoard(rows []string) (game.Board, error) {
	board := make(game.Board, 0, len(rows))
	for _, r := range rows {
		tiles, err := parseRow(r)
		if err != nil {
			return nil, err
		}
		board = append(board, tiles)
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}
	return board, nil
}
