//go:build js && wasm

// cmd/wasm/main.go
//
// Browser build of the save layer. Exposes three globals for the page's UI:
//   pintordleStart(onLoad, onError)   → calls onLoad([board, gameState]) once;
//                                       onError(reason) on clipboard failures
//   pintordleSave(board, gameState)   → persists today's record
//   pintordleCopy(board, isWin)       → writes the share text to the clipboard
//
// Storage is window.localStorage under "gameHistory", the same key and JSON
// layout earlier versions of the page used.

package main

import (
	"context"
	"fmt"
	"syscall/js"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pintordle/internal/bridge"
	"github.com/robalobadob/pintordle/internal/clock"
	"github.com/robalobadob/pintordle/internal/game"
	"github.com/robalobadob/pintordle/internal/history"
	"github.com/robalobadob/pintordle/internal/share"
	"github.com/robalobadob/pintordle/internal/store"
)

// jsUI forwards Load to the callback the page passed to pintordleStart.
type jsUI struct{ onLoad js.Value }

func (u jsUI) Load(board game.Board, state game.State) {
	u.onLoad.Invoke(js.ValueOf([]any{boardToJS(board), string(state)}))
}

// browserClipboard uses navigator.clipboard. writeText is asynchronous, so
// a rejected promise cannot be returned; it is passed to onError instead,
// which the page uses to show a notice.
type browserClipboard struct{ onError js.Value }

func (c browserClipboard) notify(reason string) {
	if c.onError.Type() == js.TypeFunction {
		c.onError.Invoke(reason)
	}
}

func (c browserClipboard) WriteText(text string) error {
	nav := js.Global().Get("navigator")
	if nav.Type() != js.TypeObject {
		c.notify("clipboard unavailable")
		return fmt.Errorf("%w: navigator missing", share.ErrClipboard)
	}
	cb := nav.Get("clipboard")
	if cb.Type() != js.TypeObject {
		c.notify("clipboard unavailable")
		return fmt.Errorf("%w: navigator.clipboard missing", share.ErrClipboard)
	}
	var onErr js.Func
	onErr = js.FuncOf(func(this js.Value, args []js.Value) any {
		defer onErr.Release()
		msg := "unknown"
		if len(args) > 0 {
			msg = args[0].Call("toString").String()
		}
		log.Warn().Str("reason", msg).Msg("clipboard write rejected")
		c.notify(msg)
		return nil
	})
	cb.Call("writeText", text).Call("catch", onErr)
	return nil
}

func boardToJS(b game.Board) []any {
	rows := make([]any, len(b))
	for i, row := range b {
		tiles := make([]any, len(row))
		for j, t := range row {
			tiles[j] = t
		}
		rows[i] = tiles
	}
	return rows
}

func isArray(v js.Value) bool {
	return js.Global().Get("Array").Call("isArray", v).Bool()
}

// boardFromJS converts an array of arrays of strings. Anything else is
// rejected rather than indexed, since a panic here stops the runtime.
func boardFromJS(v js.Value) (game.Board, error) {
	if v.IsUndefined() || v.IsNull() {
		return game.Board{}, nil
	}
	if !isArray(v) {
		return nil, fmt.Errorf("%w: board is %s, not an array", game.ErrInvalidBoard, v.Type())
	}
	b := make(game.Board, v.Length())
	for i := range b {
		row := v.Index(i)
		if !isArray(row) {
			return nil, fmt.Errorf("%w: row %d is %s, not an array", game.ErrInvalidBoard, i, row.Type())
		}
		b[i] = make([]string, row.Length())
		for j := range b[i] {
			tile := row.Index(j)
			if tile.Type() != js.TypeString {
				return nil, fmt.Errorf("%w: row %d tile %d is %s", game.ErrInvalidBoard, i, j, tile.Type())
			}
			b[i][j] = tile.String()
		}
	}
	return b, nil
}

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	ctx := context.Background()

	h := history.New(store.NewLocalStorage(), history.DefaultKey)
	var core *bridge.Core

	js.Global().Set("pintordleStart", js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) < 1 || args[0].Type() != js.TypeFunction {
			log.Error().Msg("pintordleStart: missing onLoad callback")
			return nil
		}
		if core != nil {
			log.Warn().Msg("pintordleStart: already started")
			return nil
		}
		clip := browserClipboard{}
		if len(args) > 1 {
			clip.onError = args[1]
		}
		core = bridge.NewCore(h, clip, jsUI{onLoad: args[0]}, clock.RealClock{})
		if err := core.Start(ctx); err != nil {
			log.Error().Err(err).Msg("start")
		}
		return nil
	}))

	js.Global().Set("pintordleSave", js.FuncOf(func(this js.Value, args []js.Value) any {
		if core == nil || len(args) < 2 {
			log.Error().Msg("pintordleSave: not started or missing arguments")
			return nil
		}
		st, err := game.ParseState(args[1].String())
		if err != nil {
			log.Error().Err(err).Msg("save")
			return nil
		}
		board, err := boardFromJS(args[0])
		if err != nil {
			log.Error().Err(err).Msg("save")
			return nil
		}
		if err := core.Save(ctx, board, st); err != nil {
			log.Error().Err(err).Msg("save")
		}
		return nil
	}))

	js.Global().Set("pintordleCopy", js.FuncOf(func(this js.Value, args []js.Value) any {
		if core == nil || len(args) < 2 {
			log.Error().Msg("pintordleCopy: not started or missing arguments")
			return nil
		}
		board, err := boardFromJS(args[0])
		if err != nil {
			log.Error().Err(err).Msg("copy results")
			return nil
		}
		text, err := core.CopyResultsToClipboard(ctx, board, args[1].Truthy())
		if err != nil {
			log.Warn().Err(err).Msg("copy results")
		}
		return text
	}))

	select {}
}
