package experiments

import (
	"fmt"
	"stratego/config"
	"stratego/engine"
	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/searcher"
	"stratego/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Matchup pairs two agent configs. Sides alternate from game to game.
type Matchup [2]metrics.AgentConfig

// RunEvaluatorExperiment plays the built-in evaluators against each other and
// against a random baseline. It returns the directory holding the results.
func RunEvaluatorExperiment(cfg config.Config) (string, error) {
	fallback := cfg.Fallback == searcher.FallbackRandom.String()
	baseline := metrics.AgentConfig{ID: 0, Explore: true, Seed: cfg.Seed}
	material := metrics.AgentConfig{ID: 1, Evaluator: "material", Fallback: fallback}
	mobility := metrics.AgentConfig{ID: 2, Evaluator: "mobility", Fallback: fallback}

	configs := []metrics.AgentConfig{baseline, material, mobility}
	matchUps := []Matchup{
		{baseline, material},
		{baseline, mobility},
		{material, mobility},
	}
	return RunMatchups("evaluators", cfg, configs, matchUps)
}

// RunMatchups plays cfg.Games games per matchup and stores the agent configs,
// game records and move records as CSV under cfg.OutputDir.
func RunMatchups(name string, cfg config.Config, configs []metrics.AgentConfig, matchUps []Matchup) (string, error) {
	log.Info().Msgf("starting %s experiment...", name)

	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}
	for mi, matchup := range matchUps {
		log.Info().Msgf("starting matchup %d of %d between agent %d and agent %d...", mi+1, len(matchUps), matchup[0].ID, matchup[1].ID)

		wins := map[int]int{}
		for i := 0; i < cfg.Games; i++ {
			count++
			configA, configB := matchup[0], matchup[1]
			if i%2 == 1 {
				configA, configB = configB, configA
			}

			winner, gameMetric, moveMetrics, err := runGame(configA, configB, cfg, uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			switch winner {
			case game.SideA.String():
				wins[configA.ID]++
			case game.SideB.String():
				wins[configB.ID]++
			}

			gameRecords = append(gameRecords, metrics.GameRecord{
				Number:     count,
				AgentA:     configA.ID,
				AgentB:     configB.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}
			log.Debug().Msgf("completed matchup %d game %d with winner: %q", mi+1, i+1, winner)
		}
		log.Info().Msgf("completed matchup %d of %d: agent %d won %d, agent %d won %d",
			mi+1, len(matchUps), matchup[0].ID, wins[matchup[0].ID], matchup[1].ID, wins[matchup[1].ID])
	}

	log.Info().Msgf("completed %s experiment", name)
	return store(name, cfg.OutputDir, configs, gameRecords, moveRecords)
}

func store(name, root string, configs []metrics.AgentConfig, gameRecords []metrics.GameRecord, moveRecords []metrics.MoveRecord) (string, error) {
	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored results in %s", writer.Dir())
	return writer.Dir(), nil
}

// runGame executes a single game, configA playing side A.
func runGame(configA, configB metrics.AgentConfig, cfg config.Config, number uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agentA, err := NewAgent(configA, number)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	agentB, err := NewAgent(configB, number)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	e := engine.LocalEngine(
		[2]agent.Agent{agentA, agentB},
		engine.WithMaxTurns(cfg.MaxTurns),
		engine.WithSeed(cfg.Seed+number),
	)
	return e.Run()
}

// NewAgent builds the agent described by config. The game number is mixed
// into the seed so exploring agents differ between games.
func NewAgent(config metrics.AgentConfig, number uint64) (agent.Agent, error) {
	options := []searcher.Option{
		searcher.WithSeed(config.Seed + number),
		searcher.WithMetrics(),
	}
	if config.Explore {
		options = append(options, searcher.WithExplore(true))
	}
	if config.Fallback {
		options = append(options, searcher.WithFallback(searcher.FallbackRandom))
	}

	var evaluator game.Evaluator
	if config.Evaluator != "" {
		var err error
		evaluator, err = game.LookupEvaluator(config.Evaluator)
		if err != nil {
			return nil, fmt.Errorf("agent %d: %w", config.ID, err)
		}
		options = append(options, searcher.WithEvaluatorName(config.Evaluator))
	} else if !config.Explore {
		return nil, fmt.Errorf("agent %d needs an evaluator unless it explores", config.ID)
	}
	return agent.NewEvaluationAgent(searcher.NewGreedy(evaluator, options...)), nil
}
