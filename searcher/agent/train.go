package agent

import (
	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/searcher"

	"golang.org/x/exp/rand"
)

type trainingAgent struct {
	greedy   *searcher.Greedy
	explorer *searcher.Greedy
	epsilon  float64
	rng      *rand.Rand
}

// NewTrainingAgent returns a new agent for self-play during training. With
// probability epsilon a move is drawn uniformly at random, otherwise the
// greedy move is played.
func NewTrainingAgent(evaluator game.Evaluator, epsilon float64, seed uint64) Agent {
	if epsilon < 0 || epsilon > 1 {
		panic("epsilon must be in [0, 1]")
	}
	return trainingAgent{
		greedy:   searcher.NewGreedy(evaluator, searcher.WithSeed(seed), searcher.WithMetrics()),
		explorer: searcher.NewGreedy(nil, searcher.WithExplore(true), searcher.WithSeed(seed+1), searcher.WithMetrics()),
		epsilon:  epsilon,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (a trainingAgent) FindMove(b *game.Board, side game.Side) (game.Move, bool, metrics.SearchMetric, error) {
	// TODO: decay epsilon as training progresses
	search := a.greedy
	if a.rng.Float64() < a.epsilon {
		search = a.explorer
	}
	result, metric, err := search.Search(b, side)
	return result.Move, result.Found, metric, err
}
