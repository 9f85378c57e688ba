package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pintordle/internal/config"
	"github.com/robalobadob/pintordle/internal/game"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		LogLevel:   "error",
		Backend:    config.BackendFile,
		FileDir:    t.TempDir(),
		StorageKey: "gameHistory",
		Clipboard:  false,
	}
}

func run(t *testing.T, cfg *config.Config, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(cfg)
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestDayCommand(t *testing.T) {
	out, _, err := run(t, testConfig(t), "day", "--date", "2022-06-05")
	require.NoError(t, err)
	assert.Equal(t, "1 2022-06-05\n", out)
}

func TestLoadEmptyDay(t *testing.T) {
	out, _, err := run(t, testConfig(t), "load", "--date", "2022-06-05")
	require.NoError(t, err)
	assert.Equal(t, "Game 1 (2022-06-05): playing, 0/6 rows\n", out)
}

func TestSaveLoadShareAcrossInvocations(t *testing.T) {
	cfg := testConfig(t)

	out, _, err := run(t, cfg, "save", "--date", "2022-07-16", "--state", "won", "RED", "G,R,E,Y")
	require.NoError(t, err)
	assert.Equal(t, "saved game 42: won, 2 rows\n", out)

	out, _, err = run(t, cfg, "load", "--date", "2022-07-16")
	require.NoError(t, err)
	assert.Equal(t, "Game 42 (2022-07-16): won, 2/6 rows\n  R E D\n  G R E Y\n", out)

	out, _, err = run(t, cfg, "share", "--date", "2022-07-16")
	require.NoError(t, err)
	assert.Equal(t, "Pintordle 42 2/6\n\nRED\nGREY\n", out)

	// A different day starts fresh.
	out, _, err = run(t, cfg, "load", "--date", "2022-07-17")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Game 43 (2022-07-17): playing, 0/6"))

	out, _, err = run(t, cfg, "history")
	require.NoError(t, err)
	assert.Contains(t, out, "Game 42 (2022-07-16): won")
}

func TestCommandsWithoutSessionLeaveStorageAlone(t *testing.T) {
	cfg := testConfig(t)
	cfg.Backend = config.BackendSQLite
	cfg.DBPath = filepath.Join(t.TempDir(), "data", "pintordle.db")

	for _, args := range [][]string{{"help"}, {"day"}, {"completion", "bash"}, {"--help"}} {
		_, _, err := run(t, cfg, args...)
		require.NoError(t, err, "args %v", args)
		_, err = os.Stat(cfg.DBPath)
		assert.True(t, os.IsNotExist(err), "args %v created the database", args)
	}

	_, _, err := run(t, cfg, "load")
	require.NoError(t, err)
	_, err = os.Stat(cfg.DBPath)
	assert.NoError(t, err)
}

func TestShareUnfinishedGame(t *testing.T) {
	_, _, err := run(t, testConfig(t), "share", "--date", "2022-06-05")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not finished")
}

func TestSaveRejectsBadState(t *testing.T) {
	_, _, err := run(t, testConfig(t), "save", "--state", "paused", "ABC")
	assert.ErrorIs(t, err, game.ErrInvalidState)
}

func TestHistoryEmpty(t *testing.T) {
	out, _, err := run(t, testConfig(t), "history")
	require.NoError(t, err)
	assert.Equal(t, "no saved games\n", out)
}

func TestParseRow(t *testing.T) {
	tiles, err := parseRow("🟩⬛🟨")
	require.NoError(t, err)
	assert.Equal(t, []string{"🟩", "⬛", "🟨"}, tiles)

	tiles, err = parseRow(" a, b ,c ")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, tiles)

	_, err = parseRow("   ")
	assert.ErrorIs(t, err, game.ErrInvalidBoard)

	_, err = parseBoard([]string{"a,,b"})
	assert.ErrorIs(t, err, game.ErrInvalidBoard)
}
