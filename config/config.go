package config

import (
	"os"
	"strconv"
)

// Defaults used when the environment leaves a setting unset.
const (
	DefaultGames     = 10
	DefaultMaxTurns  = 1000
	DefaultSeed      = 1
	DefaultEvaluator = "material"
	DefaultFallback  = "none"
	DefaultLogLevel  = "info"
	DefaultHTTPAddr  = ":8080"
	DefaultOutputDir = "data"
)

type Config struct {
	Games     int    // Games per matchup in the arena
	MaxTurns  int    // Moves before a game is stopped without winner
	Seed      uint64 // Base seed for setups and exploring agents
	Evaluator string
	Fallback  string // "none" or "random"
	LogLevel  string
	HTTPAddr  string
	OutputDir string
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i > 0 {
			return i
		}
	}
	return def
}

func getenvUint(key string, def uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		if u, err := strconv.ParseUint(v, 10, 64); err == nil {
			return u
		}
	}
	return def
}

// Load reads the STRATEGO_* environment variables. Unset or malformed values
// fall back to the defaults.
func Load() Config {
	return Config{
		Games:     getenvInt("STRATEGO_GAMES", DefaultGames),
		MaxTurns:  getenvInt("STRATEGO_MAX_TURNS", DefaultMaxTurns),
		Seed:      getenvUint("STRATEGO_SEED", DefaultSeed),
		Evaluator: getenv("STRATEGO_EVALUATOR", DefaultEvaluator),
		Fallback:  getenv("STRATEGO_FALLBACK", DefaultFallback),
		LogLevel:  getenv("STRATEGO_LOG_LEVEL", DefaultLogLevel),
		HTTPAddr:  getenv("STRATEGO_HTTP_ADDR", DefaultHTTPAddr),
		OutputDir: getenv("STRATEGO_OUTPUT_DIR", DefaultOutputDir),
	}
}
