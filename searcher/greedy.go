package searcher

import (
	"errors"
	"fmt"
	"math"
	"stratego/experiments/metrics"
	"stratego/game"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ErrEvaluator wraps a failure of the injected evaluator.
var ErrEvaluator = errors.New("evaluator failed")

// Fallback decides what a search does when the evaluator fails.
type Fallback int

const (
	// FallbackNone surfaces the evaluator error to the caller.
	FallbackNone Fallback = iota
	// FallbackRandom plays a uniformly random legal move instead.
	FallbackRandom
)

func (f Fallback) String() string {
	if f == FallbackRandom {
		return "random"
	}
	return "none"
}

// ParseFallback maps "none" or "random" to a Fallback.
func ParseFallback(s string) (Fallback, error) {
	switch s {
	case "", "none":
		return FallbackNone, nil
	case "random":
		return FallbackRandom, nil
	default:
		return FallbackNone, fmt.Errorf("unknown fallback %q", s)
	}
}

type Option func(g *Greedy)

// Result is the outcome of one search. Found is false when the side has no
// legal move.
type Result struct {
	Move  game.Move
	Score float64
	Found bool
}

// Greedy is a one-ply search: every legal move is played on a private clone
// of the board and the resulting position is scored by the evaluator.
type Greedy struct {
	evaluator     game.Evaluator
	evaluatorName string
	explore       bool
	fallback      Fallback
	rng           *rand.Rand
	metrics       metrics.Collector
}

// WithExplore makes the search return a uniformly random legal move.
func WithExplore(explore bool) Option {
	return func(g *Greedy) {
		g.explore = explore
	}
}

func WithSeed(seed uint64) Option {
	return func(g *Greedy) {
		g.rng = rand.New(rand.NewSource(seed))
	}
}

func WithFallback(fallback Fallback) Option {
	return func(g *Greedy) {
		g.fallback = fallback
	}
}

// WithEvaluatorName labels the evaluator in collected metrics.
func WithEvaluatorName(name string) Option {
	return func(g *Greedy) {
		g.evaluatorName = name
	}
}

func WithMetrics() Option {
	return func(g *Greedy) {
		g.metrics = metrics.NewCollector()
	}
}

func NewGreedy(evaluator game.Evaluator, options ...Option) *Greedy {
	g := &Greedy{ // Default values
		evaluator:     evaluator,
		evaluatorName: fmt.Sprintf("%T", evaluator),
		metrics:       metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	if g.evaluator == nil && !g.explore {
		panic("greedy search needs an evaluator unless it explores")
	}
	return g
}

// SelectMove returns the best move for side, or false if side cannot move.
func (g *Greedy) SelectMove(b *game.Board, side game.Side) (game.Move, bool, error) {
	result, _, err := g.Search(b, side)
	if err != nil {
		return game.Move{}, false, err
	}
	return result.Move, result.Found, nil
}

// Search is SelectMove with the score and the metrics of the call. The
// board passed in is never modified.
func (g *Greedy) Search(b *game.Board, side game.Side) (Result, metrics.SearchMetric, error) {
	g.metrics.Start(g.evaluatorName, g.explore)

	moves := game.LegalMoves(b, side)
	g.metrics.SetCandidates(len(moves))
	if len(moves) == 0 {
		return Result{}, g.metrics.Complete(), nil
	}

	if g.explore {
		return g.random(moves), g.metrics.Complete(), nil
	}

	best := Result{Score: math.Inf(-1)}
	for _, move := range moves {
		score, err := g.score(b, move, side)
		if err != nil {
			if g.fallback == FallbackRandom && errors.Is(err, ErrEvaluator) {
				log.Warn().Err(err).Msgf("evaluator failed for side %v, playing a random move", side)
				g.metrics.SetFallback()
				return g.random(moves), g.metrics.Complete(), nil
			}
			return Result{}, g.metrics.Complete(), err
		}
		g.metrics.AddEvaluation(score)
		// Strictly greater keeps the first of equally scored moves
		if !best.Found || score > best.Score {
			best = Result{Move: move, Score: score, Found: true}
		}
	}
	return best, g.metrics.Complete(), nil
}

func (g *Greedy) score(b *game.Board, move game.Move, side game.Side) (float64, error) {
	probe := b.Clone()
	if _, err := game.ApplyMove(probe, move); err != nil {
		return 0, fmt.Errorf("probing %v: %w", move, err)
	}
	score, err := g.evaluator.Score(probe, side)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrEvaluator, err)
	}
	if math.IsNaN(score) {
		return 0, fmt.Errorf("%w: NaN score for %v", ErrEvaluator, move)
	}
	return score, nil
}

func (g *Greedy) random(moves []game.Move) Result {
	return Result{Move: moves[g.rng.Intn(len(moves))], Found: true}
}
