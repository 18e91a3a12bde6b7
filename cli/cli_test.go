package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) string {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs(args)
	require.NoError(t, Execute())
	return out.String()
}

func TestGames(t *testing.T) {
	t.Run("every registered game is listed", func(t *testing.T) {
		out := execute(t, "games")
		require.Contains(t, out, "cooperative-spies")
		require.Contains(t, out, "one-shot-investigation")
		require.Contains(t, out, "3 agents")
	})
}

func TestRun(t *testing.T) {
	t.Run("a small run writes its results", func(t *testing.T) {
		dir := t.TempDir()
		out := execute(t, "run", "--games", "cooperative-spies", "--runs", "2", "--workers", "1",
			"--output", dir, "--sqlite", filepath.Join(dir, "credence.db"), "--log-level", "error")
		require.Contains(t, out, "cooperative-spies")

		require.FileExists(t, filepath.Join(dir, "credence.db"))
		records, err := filepath.Glob(filepath.Join(dir, "*", "matchup_records.csv"))
		require.NoError(t, err)
		require.Len(t, records, 1)
	})
}
