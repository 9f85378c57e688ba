// Package share renders a finished board as the text players paste into
// chats, and puts it on the system clipboard.
package share

import (
	"strconv"
	"strings"

	"github.com/robalobadob/pintordle/internal/game"
)

// ProductName leads the header line.
const ProductName = "Pintordle"

// Format renders:
//
//	Pintordle <n> <rows|x>/6
//
//	<row 1 tiles>
//	...
//	<row k tiles>
//
// The guess count is shown only for a win; a loss shows "x".
func Format(gameNumber int, board game.Board, isWin bool) string {
	score := "x"
	if isWin {
		score = strconv.Itoa(len(board))
	}

	var b strings.Builder
	b.WriteString(ProductName)
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(gameNumber))
	b.WriteByte(' ')
	b.WriteString(score)
	b.WriteString("/")
	b.WriteString(strconv.Itoa(game.MaxRows))
	b.WriteString("\n\n")
	for i, row := range board {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strings.Join(row, ""))
	}
	b.WriteByte('\n')
	return b.String()
}
