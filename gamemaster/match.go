package gamemaster

import (
	"errors"
	"fmt"
	"stratego/game"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

var (
	ErrIllegalMove      = errors.New("illegal move")
	ErrWrongTurn        = errors.New("not this side's turn")
	ErrWrongPhase       = errors.New("not allowed in this phase")
	ErrGameOver         = errors.New("game is over - no moves allowed")
	ErrOutsideSetupZone = errors.New("square is outside the side's setup zone")
	ErrInvalidSide      = errors.New("invalid side")
)

type Phase int

const (
	Setup Phase = iota
	Play
	Finished
)

func (p Phase) String() string {
	switch p {
	case Setup:
		return "setup"
	case Play:
		return "play"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Reason tells how a finished match was decided.
type Reason string

const (
	ReasonNone         Reason = ""
	ReasonFlagCaptured Reason = "flag captured"
	ReasonNoLegalMoves Reason = "no legal moves"
)

type MatchOption func(m *Match)

// WithDistribution fills both trays with distribution instead of the
// standard 40 pieces.
func WithDistribution(distribution map[game.Rank]int) MatchOption {
	return func(m *Match) {
		m.trays = [2]*game.Tray{
			game.NewTrayWith(game.SideA, distribution),
			game.NewTrayWith(game.SideB, distribution),
		}
	}
}

// Match owns the live board. It is the only writer of that board and is not
// safe for concurrent use.
type Match struct {
	ID      string
	board   *game.Board
	trays   [2]*game.Tray
	phase   Phase
	turn    game.Side
	winner  game.Side
	decided bool
	reason  Reason
	history []game.CombatResult
}

func NewMatch(options ...MatchOption) *Match {
	m := &Match{
		ID:    uuid.NewString(),
		board: game.NewBoard(),
		trays: [2]*game.Tray{game.NewTray(game.SideA), game.NewTray(game.SideB)},
		phase: Setup,
		turn:  game.SideA,
	}
	for _, option := range options {
		option(m)
	}
	log.Debug().Str("match", m.ID).Msg("match created")
	return m
}

func (m *Match) Phase() Phase {
	return m.phase
}

// Turn is the side to move. It is side A during setup.
func (m *Match) Turn() game.Side {
	return m.turn
}

// Winner returns the winning side once the match is finished.
func (m *Match) Winner() (game.Side, bool) {
	return m.winner, m.decided
}

func (m *Match) Reason() Reason {
	return m.reason
}

// Board returns a copy of the live board.
func (m *Match) Board() *game.Board {
	return m.board.Clone()
}

// Tray returns a snapshot of the pieces side has yet to place.
func (m *Match) Tray(side game.Side) []game.TrayPiece {
	if !side.Valid() {
		return nil
	}
	return m.trays[side].Pieces()
}

// History returns the moves committed so far, oldest first.
func (m *Match) History() []game.CombatResult {
	out := make([]game.CombatResult, len(m.history))
	copy(out, m.history)
	return out
}

// LegalMoves lists the moves of the side to move, empty outside of play.
func (m *Match) LegalMoves() []game.Move {
	if m.phase != Play {
		return []game.Move{}
	}
	return game.LegalMoves(m.board, m.turn)
}

func (m *Match) checkSetup(side game.Side) error {
	if !side.Valid() {
		return fmt.Errorf("side %d: %w", int(side), ErrInvalidSide)
	}
	switch m.phase {
	case Finished:
		return ErrGameOver
	case Play:
		return fmt.Errorf("setup during %v: %w", m.phase, ErrWrongPhase)
	}
	return nil
}

// Place moves one piece of rank from side's tray onto sq. Play starts as soon
// as both trays are empty.
func (m *Match) Place(side game.Side, rank game.Rank, sq game.Square) error {
	if err := m.checkSetup(side); err != nil {
		return err
	}
	if !game.SetupZone(side, sq) {
		return fmt.Errorf("place %v at %v: %w", rank, sq, ErrOutsideSetupZone)
	}
	if !m.board.Empty(sq) {
		return fmt.Errorf("place %v at %v: %w", rank, sq, game.ErrOccupied)
	}
	if err := m.trays[side].Take(rank); err != nil {
		return err
	}
	if err := m.board.Put(sq, game.NewPiece(rank, side)); err != nil {
		_ = m.trays[side].Return(rank)
		return err
	}
	m.maybeStartPlay()
	return nil
}

// Unplace takes side's piece on sq back into its tray.
func (m *Match) Unplace(side game.Side, sq game.Square) error {
	if err := m.checkSetup(side); err != nil {
		return err
	}
	p, ok := m.board.At(sq)
	if !ok {
		return fmt.Errorf("unplace %v: %w", sq, game.ErrEmptySquare)
	}
	if p.Side != side {
		return fmt.Errorf("unplace %v: %w", sq, game.ErrNotOwner)
	}
	if err := m.trays[side].Return(p.Rank); err != nil {
		return err
	}
	_, err := m.board.Remove(sq)
	return err
}

// AutoPlace puts every piece left in side's tray on a random free square of
// its setup zone.
func (m *Match) AutoPlace(side game.Side, rng *rand.Rand) error {
	if err := m.checkSetup(side); err != nil {
		return err
	}
	var free []game.Square
	for _, sq := range game.SetupSquares(side) {
		if m.board.Empty(sq) {
			free = append(free, sq)
		}
	}
	ranks := m.trays[side].Unplaced()
	if len(ranks) > len(free) {
		return fmt.Errorf("auto place %d pieces on %d free squares: %w", len(ranks), len(free), ErrOutsideSetupZone)
	}
	rng.Shuffle(len(free), func(i, j int) { free[i], free[j] = free[j], free[i] })
	for i, rank := range ranks {
		if err := m.Place(side, rank, free[i]); err != nil {
			return err
		}
	}
	m.maybeStartPlay()
	return nil
}

func (m *Match) maybeStartPlay() {
	if m.phase != Setup || !m.trays[game.SideA].Empty() || !m.trays[game.SideB].Empty() {
		return
	}
	m.phase = Play
	m.turn = game.SideA
	log.Info().Str("match", m.ID).Msgf("setup complete, side %v to move", m.turn)
	if !game.HasLegalMove(m.board, m.turn) {
		m.finish(m.turn.Opponent(), ReasonNoLegalMoves)
	}
}

// Submit validates and commits a move for side. An illegal move leaves the
// match untouched.
func (m *Match) Submit(side game.Side, move game.Move) (game.CombatResult, error) {
	switch m.phase {
	case Finished:
		return game.CombatResult{}, ErrGameOver
	case Setup:
		return game.CombatResult{}, fmt.Errorf("move during %v: %w", m.phase, ErrWrongPhase)
	}
	if side != m.turn {
		return game.CombatResult{}, fmt.Errorf("side %v: %w", side, ErrWrongTurn)
	}
	if !game.IsLegalMove(m.board, move, side) {
		return game.CombatResult{}, fmt.Errorf("%v: %w", move, ErrIllegalMove)
	}

	result, err := game.ApplyMove(m.board, move)
	if err != nil {
		return game.CombatResult{}, fmt.Errorf("%v: %w", move, err)
	}
	m.history = append(m.history, result)
	log.Debug().Str("match", m.ID).Msgf("side %v played %v (%v)", side, move, result.Outcome)

	if result.Terminal {
		m.finish(result.Winner, ReasonFlagCaptured)
		return result, nil
	}
	m.turn = side.Opponent()
	if !game.HasLegalMove(m.board, m.turn) {
		m.finish(side, ReasonNoLegalMoves)
	}
	return result, nil
}

func (m *Match) finish(winner game.Side, reason Reason) {
	m.phase = Finished
	m.winner = winner
	m.decided = true
	m.reason = reason
	log.Info().Str("match", m.ID).Msgf("side %v wins: %s", winner, reason)
}
