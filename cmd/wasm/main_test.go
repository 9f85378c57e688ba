//go:build js && wasm

package main

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pintordle/internal/game"
	"github.com/robalobadob/pintordle/internal/share"
)

func TestBoardFromJS(t *testing.T) {
	b, err := boardFromJS(js.ValueOf([]any{[]any{"R", "E", "D"}, []any{"G"}}))
	require.NoError(t, err)
	assert.Equal(t, game.Board{{"R", "E", "D"}, {"G"}}, b)

	b, err = boardFromJS(js.Null())
	require.NoError(t, err)
	assert.Equal(t, game.Board{}, b)
}

func TestBoardFromJSRejectsWrongShapes(t *testing.T) {
	for name, v := range map[string]js.Value{
		"number":      js.ValueOf(5),
		"string":      js.ValueOf("RED"),
		"object":      js.ValueOf(map[string]any{"length": 2}),
		"row number":  js.ValueOf([]any{7}),
		"tile number": js.ValueOf([]any{[]any{"A", 1}}),
		"tile null":   js.ValueOf([]any{[]any{nil}}),
	} {
		_, err := boardFromJS(v)
		assert.ErrorIs(t, err, game.ErrInvalidBoard, name)
	}
}

func TestBrowserClipboardReportsMissingClipboard(t *testing.T) {
	if nav := js.Global().Get("navigator"); nav.Type() == js.TypeObject && nav.Get("clipboard").Type() == js.TypeObject {
		t.Skip("host provides a clipboard")
	}
	var reasons []string
	onError := js.FuncOf(func(this js.Value, args []js.Value) any {
		reasons = append(reasons, args[0].String())
		return nil
	})
	defer onError.Release()

	err := browserClipboard{onError: onError.Value}.WriteText("Pintordle 1 x/6\n\nA\n")
	assert.ErrorIs(t, err, share.ErrClipboard)
	assert.Equal(t, []string{"clipboard unavailable"}, reasons)
}
