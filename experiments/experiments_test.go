package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"stratego/config"
	"stratego/experiments/metrics"
	"stratego/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestRunMatchups(t *testing.T) {
	cfg := config.Config{Games: 2, MaxTurns: 12, Seed: 4, OutputDir: t.TempDir()}
	random := metrics.AgentConfig{ID: 0, Explore: true}
	material := metrics.AgentConfig{ID: 1, Evaluator: "material"}

	dir, err := RunMatchups("smoke", cfg, []metrics.AgentConfig{random, material}, []Matchup{{random, material}})

	require.NoError(t, err)
	require.Equal(t, filepath.Join(cfg.OutputDir, "smoke"), filepath.Dir(dir))

	configs := readCSV(t, filepath.Join(dir, "agent_configs.csv"))
	require.Len(t, configs, 3)

	games := readCSV(t, filepath.Join(dir, "game_records.csv"))
	require.Len(t, games, 3)
	require.Equal(t, []string{"1", "0", "1"}, []string{games[1][0], games[1][2], games[1][3]})
	require.Equal(t, []string{"2", "1", "0"}, []string{games[2][0], games[2][2], games[2][3]}, "sides alternate")

	moves := readCSV(t, filepath.Join(dir, "move_records.csv"))
	require.Greater(t, len(moves), 1)
	require.Equal(t, "game", moves[0][0])
}

func TestRunMatchupsRejectsBadConfigs(t *testing.T) {
	cfg := config.Config{Games: 1, MaxTurns: 5, OutputDir: t.TempDir()}
	oracle := metrics.AgentConfig{ID: 3, Evaluator: "oracle"}

	_, err := RunMatchups("broken", cfg, []metrics.AgentConfig{oracle}, []Matchup{{oracle, oracle}})

	require.ErrorContains(t, err, "unknown evaluator")
}

func TestNewAgent(t *testing.T) {
	t.Run("greedy agent uses the named evaluator", func(t *testing.T) {
		a, err := NewAgent(metrics.AgentConfig{ID: 1, Evaluator: "mobility"}, 1)
		require.NoError(t, err)

		b := game.NewBoard()
		require.NoError(t, b.Put(game.Square{X: 0, Y: 0}, game.NewPiece(game.General, game.SideA)))
		_, found, metric, err := a.FindMove(b, game.SideA)

		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, "mobility", metric.Evaluator)
	})

	t.Run("non exploring agent needs an evaluator", func(t *testing.T) {
		_, err := NewAgent(metrics.AgentConfig{ID: 2}, 1)
		require.Error(t, err)
	})
}
