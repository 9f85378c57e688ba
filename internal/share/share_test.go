package share

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pintordle/internal/game"
)

func TestFormatWin(t *testing.T) {
	got := Format(42, game.Board{{"R", "E", "D"}, {"G", "R", "E", "Y"}}, true)
	assert.Equal(t, "Pintordle 42 2/6\n\nRED\nGREY\n", got)
}

func TestFormatLoss(t *testing.T) {
	board := game.Board{
		{"🟩", "⬛", "⬛", "🟨", "⬛"},
		{"⬛", "⬛", "⬛", "⬛", "⬛"},
		{"🟩", "🟩", "⬛", "⬛", "⬛"},
		{"🟩", "🟩", "🟩", "⬛", "⬛"},
		{"🟩", "🟩", "🟩", "🟩", "⬛"},
	}
	got := Format(7, board, false)

	lines := strings.Split(got, "\n")
	assert.Equal(t, "Pintordle 7 x/6", lines[0])
	assert.Equal(t, "", lines[1])
	assert.Equal(t, "🟩⬛⬛🟨⬛", lines[2])
	assert.Equal(t, "🟩🟩🟩🟩⬛", lines[6])
	assert.True(t, strings.HasSuffix(got, "⬛\n"))
}

func TestFormatWinCountsRows(t *testing.T) {
	board := make(game.Board, 6)
	for i := range board {
		board[i] = []string{"A"}
	}
	assert.True(t, strings.HasPrefix(Format(1, board, true), "Pintordle 1 6/6\n\n"))
}

func TestSystemClipboardWrapsErrors(t *testing.T) {
	orig := clipboardWriteAll
	defer func() { clipboardWriteAll = orig }()

	var wrote string
	clipboardWriteAll = func(s string) error { wrote = s; return nil }
	require.NoError(t, SystemClipboard{}.WriteText("hello"))
	assert.Equal(t, "hello", wrote)

	clipboardWriteAll = func(string) error { return errors.New("permission denied") }
	err := SystemClipboard{}.WriteText("hello")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrClipboard)
	assert.Contains(t, err.Error(), "permission denied")
}

func TestDiscard(t *testing.T) {
	assert.NoError(t, Discard{}.WriteText("anything"))
}
