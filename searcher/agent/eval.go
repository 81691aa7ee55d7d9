package agent

import (
	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/searcher"
)

type evaluationAgent struct {
	greedy *searcher.Greedy
}

// NewEvaluationAgent returns a new agent for actual game play during evaluation.
func NewEvaluationAgent(greedy *searcher.Greedy) Agent {
	return evaluationAgent{greedy: greedy}
}

func (a evaluationAgent) FindMove(b *game.Board, side game.Side) (game.Move, bool, metrics.SearchMetric, error) {
	result, metric, err := a.greedy.Search(b, side)
	return result.Move, result.Found, metric, err
}
