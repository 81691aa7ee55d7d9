package agent

import (
	"stratego/experiments/metrics"
	"stratego/game"
)

type Agent interface {
	// FindMove returns the chosen move for side, false if side has no legal move, and the
	// search metrics (if collected)
	FindMove(b *game.Board, side game.Side) (game.Move, bool, metrics.SearchMetric, error)
}
