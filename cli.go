package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/pintordle/internal/bridge"
	"github.com/robalobadob/pintordle/internal/clock"
	"github.com/robalobadob/pintordle/internal/config"
	"github.com/robalobadob/pintordle/internal/daily"
	"github.com/robalobadob/pintordle/internal/game"
	"github.com/robalobadob/pintordle/internal/history"
	"github.com/robalobadob/pintordle/internal/share"
)

// app holds one CLI session: every invocation restores today's game once,
// then runs a single command against it.
type app struct {
	cfg   *config.Config
	date  string
	clk   clock.Clock
	close func() error
	hist  *history.Store
	ui    *terminalUI
	core  *bridge.Core
}

// annotationSession marks commands that restore today's game before
// running. help, completion and day never touch storage.
const annotationSession = "pintordle/session"

var sessionCmd = map[string]string{annotationSession: "true"}

func newRootCmd(cfg *config.Config) *cobra.Command {
	a := &app{cfg: cfg, close: func() error { return nil }}

	root := &cobra.Command{
		Use:          "pintordle",
		Short:        "Local save data and share text for the daily Pintordle puzzle",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := a.setClock(); err != nil {
				return err
			}
			if cmd.Annotations[annotationSession] != "true" {
				return nil
			}
			return a.start(cmd.Context())
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return a.close()
		},
	}
	root.PersistentFlags().StringVar(&a.date, "date", "", "act as if today were this UTC date (YYYY-MM-DD)")

	root.AddCommand(a.loadCmd(), a.saveCmd(), a.shareCmd(), a.historyCmd(), a.dayCmd())
	return root
}

func (a *app) setClock() error {
	if a.date == "" {
		a.clk = clock.RealClock{}
		return nil
	}
	t, err := time.Parse("2006-01-02", a.date)
	if err != nil {
		return fmt.Errorf("--date: %w", err)
	}
	a.clk = clock.Fixed(t.UTC())
	return nil
}

// start opens storage and runs the restore step.
func (a *app) start(ctx context.Context) error {
	kv, closeFn, err := openKV(a.cfg)
	if err != nil {
		return err
	}
	a.close = closeFn
	a.hist = history.New(kv, a.cfg.StorageKey)

	var clip share.Clipboard = share.SystemClipboard{}
	if !a.cfg.Clipboard {
		clip = share.Discard{}
	}
	a.ui = &terminalUI{}
	a.core = bridge.NewCore(a.hist, clip, a.ui, a.clk)
	return a.core.Start(ctx)
}

func (a *app) loadCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "load",
		Annotations: sessionCmd,
		Short:       "Show today's saved game",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderRecord(cmd.OutOrStdout(), a.core.GameNumber(), a.ui.board, a.ui.state)
			return nil
		},
	}
}

func (a *app) saveCmd() *cobra.Command {
	var state string
	cmd := &cobra.Command{
		Use:         "save [ROW...]",
		Annotations: sessionCmd,
		Short:       "Save today's board and game state",
		Long: "Save today's board and game state. Each ROW is one guess; tiles are\n" +
			"split on commas when present, otherwise one tile per character.",
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := game.ParseState(state)
			if err != nil {
				return err
			}
			board, err := parseBoard(args)
			if err != nil {
				return err
			}
			if err := a.core.Save(cmd.Context(), board, st); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "saved game %d: %s, %d rows\n", a.core.GameNumber(), st, len(board))
			return nil
		},
	}
	cmd.Flags().StringVar(&state, "state", string(game.StatePlaying), "game state: playing, won or lost")
	return cmd
}

func (a *app) shareCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "share",
		Annotations: sessionCmd,
		Short:       "Copy today's result to the clipboard",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !a.ui.state.Finished() {
				return fmt.Errorf("game %d is not finished yet", a.core.GameNumber())
			}
			text, err := a.core.CopyResultsToClipboard(cmd.Context(), a.ui.board, a.ui.state == game.StateWon)
			switch {
			case errors.Is(err, share.ErrClipboard):
				fmt.Fprintf(cmd.ErrOrStderr(), "could not copy to clipboard: %v\n", err)
			case err != nil:
				return err
			default:
				fmt.Fprintln(cmd.ErrOrStderr(), "copied to clipboard")
			}
			fmt.Fprint(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func (a *app) historyCmd() *cobra.Command {
	return &cobra.Command{
		Use:         "history",
		Annotations: sessionCmd,
		Short:       "List every saved game",
		Args:        cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := a.hist.All(cmd.Context())
			if err != nil {
				return err
			}
			if len(recs) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no saved games")
				return nil
			}
			for _, r := range recs {
				renderRecord(cmd.OutOrStdout(), r.GameNumber, r.Board, r.GameState)
			}
			return nil
		},
	}
}

func (a *app) dayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "day",
		Short: "Print today's game number",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			now := a.clk.Now()
			fmt.Fprintf(cmd.OutOrStdout(), "%d %s\n", daily.GameNumber(now), daily.DateKey(now))
			return nil
		},
	}
}
