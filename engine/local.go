package engine

import (
	"fmt"
	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/gamemaster"
	"stratego/searcher/agent"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// ReasonTurnLimit is reported when MaxTurns ran out before a winner.
const ReasonTurnLimit = "turn limit"

type Option func(e *Local)

func WithMaxTurns(maxTurns int) Option {
	return func(e *Local) {
		e.maxTurns = maxTurns
	}
}

// WithSeed seeds the random setup of both armies.
func WithSeed(seed uint64) Option {
	return func(e *Local) {
		e.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMatch plays an existing match instead of a fresh one. Pieces still in
// its trays are placed at random.
func WithMatch(m *gamemaster.Match) Option {
	return func(e *Local) {
		e.Match = m
	}
}

var _ Engine = (*Local)(nil)

// Local plays two in-process agents against each other.
type Local struct {
	Match    *gamemaster.Match
	agents   [2]agent.Agent
	maxTurns int
	rng      *rand.Rand
}

// LocalEngine returns an engine where agents[game.SideA] plays side A.
func LocalEngine(agents [2]agent.Agent, options ...Option) *Local {
	if agents[game.SideA] == nil || agents[game.SideB] == nil {
		panic("need an agent for both sides")
	}
	e := &Local{
		agents:   agents,
		maxTurns: MaxTurns,
	}
	for _, option := range options {
		option(e)
	}
	if e.Match == nil {
		e.Match = gamemaster.NewMatch()
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return e
}

// Run executes the entire game loop until a winner is found or the turn limit is hit.
func (e *Local) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		ID:             e.Match.ID,
		StartingPlayer: game.SideA.String(),
		StartTime:      time.Now(),
	}

	for _, side := range []game.Side{game.SideA, game.SideB} {
		if e.Match.Phase() != gamemaster.Setup {
			break
		}
		if err := e.Match.AutoPlace(side, e.rng); err != nil {
			return "", gameMetric, nil, fmt.Errorf("setting up side %v: %w", side, err)
		}
	}

	log.Info().Str("match", e.Match.ID).Msgf("side %v is starting", e.Match.Turn())

	var moveMetrics []metrics.MoveMetric
	for turn := 1; e.Match.Phase() == gamemaster.Play && turn <= e.maxTurns; turn++ {
		side := e.Match.Turn()
		move, found, searchMetric, err := e.agents[side].FindMove(e.Match.Board(), side)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("agent for side %v: %w", side, err)
		}
		if !found {
			return "", gameMetric, moveMetrics, fmt.Errorf("agent for side %v found no move on turn %d", side, turn)
		}

		result, err := e.Match.Submit(side, move)
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("agent for side %v: %w", side, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         turn,
			Player:       side.String(),
			Move:         move.String(),
			Outcome:      result.Outcome.String(),
			SearchMetric: searchMetric,
		})
	}

	winner := ""
	if side, ok := e.Match.Winner(); ok {
		winner = side.String()
		gameMetric.Reason = string(e.Match.Reason())
		log.Info().Str("match", e.Match.ID).Msgf("game ended with winner %s (%s)", winner, gameMetric.Reason)
	} else {
		gameMetric.Reason = ReasonTurnLimit
		log.Info().Str("match", e.Match.ID).Msgf("stopped after %d turns (no winner yet)", e.maxTurns)
	}

	gameMetric.Winner = winner
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)
	return winner, gameMetric, moveMetrics, nil
}
