package main

import (
	"flag"
	"os"
	"stratego/config"
	"stratego/experiments"
	"stratego/searcher"
	"stratego/searcher/agent"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg := config.Load()

	mode := flag.String("mode", "arena", "arena: play evaluator matchups, serve: run the agent HTTP server")
	flag.IntVar(&cfg.Games, "games", cfg.Games, "Number of games per matchup")
	flag.IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Moves before a game is stopped without winner")
	flag.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "Base seed for setups and exploring agents")
	flag.StringVar(&cfg.Evaluator, "evaluator", cfg.Evaluator, "Default evaluator of the agent server")
	flag.StringVar(&cfg.Fallback, "fallback", cfg.Fallback, "What to play when the evaluator fails: none or random")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level")
	flag.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "Agent server address")
	flag.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Directory for experiment results")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	fallback, err := searcher.ParseFallback(cfg.Fallback)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid fallback")
	}

	switch *mode {
	case "arena":
		if _, err := experiments.RunEvaluatorExperiment(cfg); err != nil {
			log.Fatal().Err(err).Msg("experiment failed")
		}
	case "serve":
		gin.SetMode(gin.ReleaseMode)
		serverConfig := agent.ServerConfig{Evaluator: cfg.Evaluator, Fallback: fallback, Seed: cfg.Seed}
		if err := agent.StartAgentServer(cfg.HTTPAddr, serverConfig); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}
