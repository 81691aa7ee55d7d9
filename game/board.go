package game

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Size is the width and height of the board.
const Size = 10

var (
	ErrOutOfBounds = errors.New("square out of bounds")
	ErrWaterSquare = errors.New("square is water")
	ErrOccupied    = errors.New("square is occupied")
	ErrEmptySquare = errors.New("square is empty")
	ErrNotOwner    = errors.New("piece belongs to the other side")
	ErrSameSide    = errors.New("destination holds a piece of the same side")
)

// Square is a board coordinate, X is the column and Y the row.
type Square struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (sq Square) Valid() bool {
	return sq.X >= 0 && sq.X < Size && sq.Y >= 0 && sq.Y < Size
}

// Mirror returns the square as seen from the other side of the board.
func (sq Square) Mirror() Square {
	return Square{X: Size - 1 - sq.X, Y: Size - 1 - sq.Y}
}

func (sq Square) String() string {
	return fmt.Sprintf("(%d,%d)", sq.X, sq.Y)
}

func (sq Square) index() int {
	return sq.Y*Size + sq.X
}

// waterSquares are the two lakes in the middle of the board.
var waterSquares = [...]Square{
	{2, 4}, {2, 5}, {3, 4}, {3, 5},
	{6, 4}, {6, 5}, {7, 4}, {7, 5},
}

var waterMask = func() (mask [Size * Size]bool) {
	for _, sq := range waterSquares {
		mask[sq.index()] = true
	}
	return mask
}()

// IsWater reports whether sq is one of the impassable lake squares. It is
// the only place the lake layout is known.
func IsWater(sq Square) bool {
	return sq.Valid() && waterMask[sq.index()]
}

// WaterSquares returns a copy of the lake squares.
func WaterSquares() []Square {
	out := make([]Square, len(waterSquares))
	copy(out, waterSquares[:])
	return out
}

// Piece is a value type, the board stores copies and never shares them.
type Piece struct {
	Rank     Rank `json:"rank"`
	Side     Side `json:"side"`
	Revealed bool `json:"revealed"`
	HasMoved bool `json:"hasMoved"`
}

func NewPiece(rank Rank, side Side) Piece {
	return Piece{Rank: rank, Side: side}
}

type cell struct {
	piece    Piece
	occupied bool
}

// Board is the 10x10 grid. The zero value is an empty board.
type Board struct {
	cells [Size * Size]cell
}

func NewBoard() *Board {
	return &Board{}
}

// Clone returns a deep copy; the cell array holds pieces by value so a plain
// struct copy shares nothing with the original.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

func (b *Board) Equal(other *Board) bool {
	if other == nil {
		return false
	}
	return b.cells == other.cells
}

// At returns the piece on sq, if any.
func (b *Board) At(sq Square) (Piece, bool) {
	if !sq.Valid() {
		return Piece{}, false
	}
	c := b.cells[sq.index()]
	return c.piece, c.occupied
}

func (b *Board) Empty(sq Square) bool {
	_, ok := b.At(sq)
	return !ok
}

// Put places p on an empty land square.
func (b *Board) Put(sq Square, p Piece) error {
	if !sq.Valid() {
		return fmt.Errorf("put %v: %w", sq, ErrOutOfBounds)
	}
	if IsWater(sq) {
		return fmt.Errorf("put %v: %w", sq, ErrWaterSquare)
	}
	if !p.Rank.Valid() || !p.Side.Valid() {
		return fmt.Errorf("put %v: invalid piece %+v", sq, p)
	}
	if b.cells[sq.index()].occupied {
		return fmt.Errorf("put %v: %w", sq, ErrOccupied)
	}
	b.cells[sq.index()] = cell{piece: p, occupied: true}
	return nil
}

// Remove takes the piece off sq and returns it.
func (b *Board) Remove(sq Square) (Piece, error) {
	p, ok := b.At(sq)
	if !ok {
		if !sq.Valid() {
			return Piece{}, fmt.Errorf("remove %v: %w", sq, ErrOutOfBounds)
		}
		return Piece{}, fmt.Errorf("remove %v: %w", sq, ErrEmptySquare)
	}
	b.cells[sq.index()] = cell{}
	return p, nil
}

func (b *Board) set(sq Square, p Piece) {
	b.cells[sq.index()] = cell{piece: p, occupied: true}
}

func (b *Board) clear(sq Square) {
	b.cells[sq.index()] = cell{}
}

// PlacedPiece is a piece together with its square.
type PlacedPiece struct {
	Square
	Piece
}

// Pieces returns the pieces of side in row-major order.
func (b *Board) Pieces(side Side) []PlacedPiece {
	var out []PlacedPiece
	for i, c := range b.cells {
		if c.occupied && c.piece.Side == side {
			out = append(out, PlacedPiece{Square: Square{X: i % Size, Y: i / Size}, Piece: c.piece})
		}
	}
	return out
}

// Count returns how many pieces of rank side still has on the board.
func (b *Board) Count(side Side, rank Rank) int {
	n := 0
	for _, c := range b.cells {
		if c.occupied && c.piece.Side == side && c.piece.Rank == rank {
			n++
		}
	}
	return n
}

// String renders the board with row 9 on top. Side A pieces are printed as
// their symbol, side B pieces in lower case, water as '~'.
func (b *Board) String() string {
	var sb strings.Builder
	for y := Size - 1; y >= 0; y-- {
		for x := 0; x < Size; x++ {
			sq := Square{X: x, Y: y}
			switch p, ok := b.At(sq); {
			case IsWater(sq):
				sb.WriteByte('~')
			case !ok:
				sb.WriteByte('.')
			case p.Side == SideB:
				sb.WriteString(strings.ToLower(p.Rank.String()))
			default:
				sb.WriteString(p.Rank.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type boardJSON struct {
	Pieces []PlacedPiece `json:"pieces"`
}

func (b *Board) MarshalJSON() ([]byte, error) {
	all := append(b.Pieces(SideA), b.Pieces(SideB)...)
	if all == nil {
		all = []PlacedPiece{}
	}
	return json.Marshal(boardJSON{Pieces: all})
}

func (b *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var nb Board
	for _, pp := range raw.Pieces {
		if err := nb.Put(pp.Square, pp.Piece); err != nil {
			return err
		}
	}
	*b = nb
	return nil
}
