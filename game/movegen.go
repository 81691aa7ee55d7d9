package game

import "slices"

var directions = [4][2]int{{0, -1}, {-1, 0}, {1, 0}, {0, 1}}

// LegalMoves returns every legal move of side, ordered row-major by source
// square and then row-major by destination square.
func LegalMoves(b *Board, side Side) []Move {
	moves := []Move{}
	for _, pp := range b.Pieces(side) {
		if !pp.Rank.Movable() {
			continue
		}
		for _, to := range reachable(b, pp.Square, pp.Rank == Scout) {
			m := Move{From: pp.Square, To: to}
			if IsLegalMove(b, m, side) {
				moves = append(moves, m)
			}
		}
	}
	return moves
}

// HasLegalMove is LegalMoves without the allocation, for terminal checks.
func HasLegalMove(b *Board, side Side) bool {
	for _, pp := range b.Pieces(side) {
		if !pp.Rank.Movable() {
			continue
		}
		for _, d := range directions {
			m := Move{From: pp.Square, To: Square{X: pp.X + d[0], Y: pp.Y + d[1]}}
			if IsLegalMove(b, m, side) {
				return true
			}
		}
	}
	return false
}

// reachable lists candidate destinations from sq in row-major order. Rays
// stop at the first occupied or water square; the occupied square itself is
// kept so attacks are considered.
func reachable(b *Board, from Square, ray bool) []Square {
	var out []Square
	for _, d := range directions {
		sq := Square{X: from.X + d[0], Y: from.Y + d[1]}
		for sq.Valid() && !IsWater(sq) {
			out = append(out, sq)
			if !ray || !b.Empty(sq) {
				break
			}
			sq = Square{X: sq.X + d[0], Y: sq.Y + d[1]}
		}
	}
	slices.SortFunc(out, func(a, b Square) int { return a.index() - b.index() })
	return out
}
