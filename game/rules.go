package game

import "fmt"

// Move relocates the piece on From to To, attacking whatever stands there.
type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string {
	return fmt.Sprintf("%v->%v", m.From, m.To)
}

// Outcome classifies what ApplyMove did.
type Outcome int

const (
	// OutcomeMove is a step onto an empty square.
	OutcomeMove Outcome = iota
	OutcomeAttackerWins
	OutcomeDefenderWins
	OutcomeBothRemoved
)

func (o Outcome) String() string {
	switch o {
	case OutcomeMove:
		return "move"
	case OutcomeAttackerWins:
		return "attacker wins"
	case OutcomeDefenderWins:
		return "defender wins"
	case OutcomeBothRemoved:
		return "both removed"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

// CombatResult describes the effect of a single applied move.
type CombatResult struct {
	Move     Move
	Outcome  Outcome
	Attacker Piece
	// Defender is only meaningful when Combat is set.
	Defender Piece
	Combat   bool
	// Removed lists the pieces taken off the board, attacker first.
	Removed      []Piece
	FlagCaptured bool
	// Terminal is set when the move decided the game, Winner is then valid.
	Terminal bool
	Winner   Side
}

// IsLegalMove reports whether side may play m on b. Every attack on an
// opposing piece is legal; its outcome is settled by ApplyMove.
func IsLegalMove(b *Board, m Move, side Side) bool {
	if !m.From.Valid() || !m.To.Valid() {
		return false
	}
	if IsWater(m.From) || IsWater(m.To) {
		return false
	}
	p, ok := b.At(m.From)
	if !ok || !p.Rank.Movable() || p.Side != side {
		return false
	}

	dx, dy := m.To.X-m.From.X, m.To.Y-m.From.Y
	if dx != 0 && dy != 0 {
		return false // diagonal
	}
	dist := abs(dx) + abs(dy)
	if dist == 0 {
		return false
	}
	if p.Rank == Scout {
		if !pathIsClear(b, m.From, m.To) {
			return false
		}
	} else if dist != 1 {
		return false
	}

	target, occupied := b.At(m.To)
	return !occupied || target.Side != side
}

// pathIsClear walks the squares strictly between from and to, which must lie
// on one row or column.
func pathIsClear(b *Board, from, to Square) bool {
	stepX, stepY := sign(to.X-from.X), sign(to.Y-from.Y)
	for sq := (Square{X: from.X + stepX, Y: from.Y + stepY}); sq != to; sq = (Square{X: sq.X + stepX, Y: sq.Y + stepY}) {
		if IsWater(sq) || !b.Empty(sq) {
			return false
		}
	}
	return true
}

// ApplyMove plays m on b in place. It does not re-check legality beyond
// what is needed to keep the board consistent; callers validate with
// IsLegalMove first.
func ApplyMove(b *Board, m Move) (CombatResult, error) {
	attacker, ok := b.At(m.From)
	if !ok {
		return CombatResult{}, fmt.Errorf("apply %v: %w", m, ErrEmptySquare)
	}
	if !m.To.Valid() {
		return CombatResult{}, fmt.Errorf("apply %v: %w", m, ErrOutOfBounds)
	}
	if IsWater(m.To) {
		return CombatResult{}, fmt.Errorf("apply %v: %w", m, ErrWaterSquare)
	}

	attacker.HasMoved = true
	result := CombatResult{Move: m, Attacker: attacker}

	defender, occupied := b.At(m.To)
	if !occupied {
		b.clear(m.From)
		b.set(m.To, attacker)
		result.Outcome = OutcomeMove
		return result, nil
	}
	if defender.Side == attacker.Side {
		return CombatResult{}, fmt.Errorf("apply %v: %w", m, ErrSameSide)
	}

	attacker.Revealed = true
	defender.Revealed = true
	result.Attacker = attacker
	result.Defender = defender
	result.Combat = true
	result.Outcome = resolveCombat(attacker.Rank, defender.Rank)

	b.clear(m.From)
	switch result.Outcome {
	case OutcomeAttackerWins:
		result.Removed = []Piece{defender}
		b.set(m.To, attacker)
		if defender.Rank == Flag {
			result.FlagCaptured = true
			result.Terminal = true
			result.Winner = attacker.Side
		}
	case OutcomeDefenderWins:
		result.Removed = []Piece{attacker}
		b.set(m.To, defender)
	case OutcomeBothRemoved:
		result.Removed = []Piece{attacker, defender}
		b.clear(m.To)
	}
	return result, nil
}

// resolveCombat applies the standard rank table for attacker hitting defender.
func resolveCombat(attacker, defender Rank) Outcome {
	switch {
	case defender == Flag:
		return OutcomeAttackerWins
	case defender == Bomb:
		if attacker == Miner {
			return OutcomeAttackerWins
		}
		return OutcomeDefenderWins
	case attacker == Spy && defender == Marshal:
		return OutcomeAttackerWins
	case attacker.Strength() == defender.Strength():
		return OutcomeBothRemoved
	case attacker.Strength() < defender.Strength():
		return OutcomeAttackerWins
	default:
		return OutcomeDefenderWins
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
