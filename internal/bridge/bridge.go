// internal/bridge/bridge.go
//
// Glue between a game UI and local persistence.
// The UI owns the rules and the board; this package only:
//   - restores today's saved game once at startup and hands it to the UI,
//   - saves the board whenever the UI asks,
//   - renders and copies the share text when the UI asks.
//
// Lifecycle: Uninitialized → Restoring → Ready. Start runs exactly once.
// The game number is derived from the clock when the Core is built and is
// reused for every save and copy in the session.

package bridge

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pintordle/internal/clock"
	"github.com/robalobadob/pintordle/internal/daily"
	"github.com/robalobadob/pintordle/internal/game"
	"github.com/robalobadob/pintordle/internal/history"
	"github.com/robalobadob/pintordle/internal/share"
)

var (
	ErrNotReady       = errors.New("bridge: not ready")
	ErrAlreadyStarted = errors.New("bridge: already started")
)

// Source is implemented by the UI. The core calls Load exactly once, with
// the restored board and state (or an empty board and "playing").
type Source interface {
	Load(board game.Board, state game.State)
}

// Sink is what the UI calls into.
type Sink interface {
	// Save persists the board and state for today's game.
	Save(ctx context.Context, board game.Board, state game.State) error

	// CopyResultsToClipboard renders the share text, writes it to the
	// clipboard and returns it. A clipboard failure is returned wrapped in
	// share.ErrClipboard alongside the text.
	CopyResultsToClipboard(ctx context.Context, board game.Board, isWin bool) (string, error)
}

// Phase is the restore state of a Core.
type Phase int

const (
	Uninitialized Phase = iota
	Restoring
	Ready
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Restoring:
		return "restoring"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Core implements Sink for one session.
type Core struct {
	mu         sync.Mutex
	history    *history.Store
	clip       share.Clipboard
	ui         Source
	gameNumber int
	phase      Phase
	log        zerolog.Logger
}

var _ Sink = (*Core)(nil)

// NewCore builds a session for the day clk reports.
func NewCore(h *history.Store, clip share.Clipboard, ui Source, clk clock.Clock) *Core {
	now := clk.Now()
	n := daily.GameNumber(now)
	return &Core{
		history:    h,
		clip:       clip,
		ui:         ui,
		gameNumber: n,
		log: log.With().
			Str("session", uuid.NewString()).
			Int("gameNumber", n).
			Str("date", daily.DateKey(now)).
			Logger(),
	}
}

// GameNumber is today's puzzle number, fixed for the session.
func (c *Core) GameNumber() int { return c.gameNumber }

// Phase reports where the session is in its lifecycle.
func (c *Core) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Start restores today's record and sends it to the UI.
// A missing, unreadable or unreachable record never blocks the game: the
// UI gets an empty board and "playing", and the problem is logged.
func (c *Core) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.phase != Uninitialized {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.phase = Restoring
	c.mu.Unlock()

	board, state := game.Board{}, game.StatePlaying
	rec, err := c.history.Load(ctx, c.gameNumber)
	switch {
	case err == nil:
		board, state = rec.Board, rec.GameState
		c.log.Info().Str("gameState", string(state)).Int("rows", len(board)).Msg("restored")
	case errors.Is(err, history.ErrNotFound):
		c.log.Info().Msg("no save for today")
	case errors.Is(err, history.ErrUnreadable):
		c.log.Warn().Err(err).Msg("ignoring unreadable save")
	default:
		c.log.Error().Err(err).Msg("restore failed")
	}

	// The lock is not held here so the UI may read Phase from Load.
	c.ui.Load(board, state)

	c.mu.Lock()
	c.phase = Ready
	c.mu.Unlock()
	return nil
}

// Save upserts today's record. Only valid once Start has completed.
func (c *Core) Save(ctx context.Context, board game.Board, state game.State) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != Ready {
		return ErrNotReady
	}
	rec := game.NewRecord(c.gameNumber, board.Clone(), state)
	if err := c.history.Upsert(ctx, rec); err != nil {
		return fmt.Errorf("save game %d: %w", c.gameNumber, err)
	}
	return nil
}

// CopyResultsToClipboard renders the share text for board and copies it.
func (c *Core) CopyResultsToClipboard(ctx context.Context, board game.Board, isWin bool) (string, error) {
	text := share.Format(c.gameNumber, board, isWin)
	if err := c.clip.WriteText(text); err != nil {
		c.log.Warn().Err(err).Msg("copy results")
		return text, err
	}
	c.log.Debug().Bool("win", isWin).Int("rows", len(board)).Msg("copied results")
	return text, nil
}
