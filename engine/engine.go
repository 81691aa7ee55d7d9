package engine

import "stratego/experiments/metrics"

const MaxTurns = 1000

type Engine interface {
	// Run plays a game till there's a winner or the turn limit is reached. The winner is
	// empty when the limit stopped the game.
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
