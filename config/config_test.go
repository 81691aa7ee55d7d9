package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults when nothing is set", func(t *testing.T) {
		for _, key := range []string{"STRATEGO_GAMES", "STRATEGO_MAX_TURNS", "STRATEGO_SEED", "STRATEGO_EVALUATOR",
			"STRATEGO_FALLBACK", "STRATEGO_LOG_LEVEL", "STRATEGO_HTTP_ADDR", "STRATEGO_OUTPUT_DIR"} {
			t.Setenv(key, "")
		}

		require.Equal(t, Config{
			Games:     DefaultGames,
			MaxTurns:  DefaultMaxTurns,
			Seed:      DefaultSeed,
			Evaluator: DefaultEvaluator,
			Fallback:  DefaultFallback,
			LogLevel:  DefaultLogLevel,
			HTTPAddr:  DefaultHTTPAddr,
			OutputDir: DefaultOutputDir,
		}, Load())
	})

	t.Run("reads the environment", func(t *testing.T) {
		t.Setenv("STRATEGO_GAMES", "4")
		t.Setenv("STRATEGO_MAX_TURNS", "250")
		t.Setenv("STRATEGO_SEED", "18446744073709551615")
		t.Setenv("STRATEGO_EVALUATOR", "mobility")
		t.Setenv("STRATEGO_FALLBACK", "random")
		t.Setenv("STRATEGO_HTTP_ADDR", "127.0.0.1:9000")

		cfg := Load()

		require.Equal(t, 4, cfg.Games)
		require.Equal(t, 250, cfg.MaxTurns)
		require.Equal(t, uint64(18446744073709551615), cfg.Seed)
		require.Equal(t, "mobility", cfg.Evaluator)
		require.Equal(t, "random", cfg.Fallback)
		require.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	})

	t.Run("malformed numbers keep the defaults", func(t *testing.T) {
		t.Setenv("STRATEGO_GAMES", "many")
		t.Setenv("STRATEGO_MAX_TURNS", "-3")
		t.Setenv("STRATEGO_SEED", "-1")

		cfg := Load()

		require.Equal(t, DefaultGames, cfg.Games)
		require.Equal(t, DefaultMaxTurns, cfg.MaxTurns)
		require.Equal(t, uint64(DefaultSeed), cfg.Seed)
	})
}
