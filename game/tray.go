package game

import (
	"errors"
	"fmt"
)

var (
	ErrTrayEmpty  = errors.New("no pieces of that rank left in the tray")
	ErrNotInTray  = errors.New("rank does not belong to the tray")
	ErrTrayIsFull = errors.New("tray already holds every piece of that rank")
)

// StandardDistribution is the number of pieces of each rank a side starts with.
var StandardDistribution = map[Rank]int{
	Marshal:    1,
	General:    1,
	Miner:      5,
	Colonel:    2,
	Major:      3,
	Captain:    4,
	Lieutenant: 4,
	Sergeant:   4,
	Scout:      8,
	Spy:        1,
	Bomb:       6,
	Flag:       1,
}

// TrayPiece is the pool of not yet placed pieces of one rank.
type TrayPiece struct {
	Rank      Rank `json:"rank"`
	Remaining int  `json:"remaining"`
	total     int
}

// Tray holds the pieces a side still has to place during setup.
type Tray struct {
	Side   Side
	pieces []TrayPiece
}

// NewTray returns a full tray for side using StandardDistribution.
func NewTray(side Side) *Tray {
	return NewTrayWith(side, StandardDistribution)
}

func NewTrayWith(side Side, distribution map[Rank]int) *Tray {
	t := &Tray{Side: side}
	for _, r := range Ranks {
		if n := distribution[r]; n > 0 {
			t.pieces = append(t.pieces, TrayPiece{Rank: r, Remaining: n, total: n})
		}
	}
	return t
}

func (t *Tray) find(rank Rank) *TrayPiece {
	for i := range t.pieces {
		if t.pieces[i].Rank == rank {
			return &t.pieces[i]
		}
	}
	return nil
}

// Take removes one piece of rank from the tray.
func (t *Tray) Take(rank Rank) error {
	tp := t.find(rank)
	if tp == nil {
		return fmt.Errorf("take %v: %w", rank, ErrNotInTray)
	}
	if tp.Remaining == 0 {
		return fmt.Errorf("take %v: %w", rank, ErrTrayEmpty)
	}
	tp.Remaining--
	return nil
}

// Return puts a placed piece of rank back, undoing a Take.
func (t *Tray) Return(rank Rank) error {
	tp := t.find(rank)
	if tp == nil {
		return fmt.Errorf("return %v: %w", rank, ErrNotInTray)
	}
	if tp.Remaining == tp.total {
		return fmt.Errorf("return %v: %w", rank, ErrTrayIsFull)
	}
	tp.Remaining++
	return nil
}

func (t *Tray) Remaining(rank Rank) int {
	if tp := t.find(rank); tp != nil {
		return tp.Remaining
	}
	return 0
}

func (t *Tray) Total() int {
	n := 0
	for _, tp := range t.pieces {
		n += tp.Remaining
	}
	return n
}

func (t *Tray) Empty() bool {
	return t.Total() == 0
}

// Pieces returns a snapshot of the tray contents.
func (t *Tray) Pieces() []TrayPiece {
	out := make([]TrayPiece, len(t.pieces))
	copy(out, t.pieces)
	return out
}

// Unplaced lists one rank per piece still in the tray, in rank order.
func (t *Tray) Unplaced() []Rank {
	var out []Rank
	for _, tp := range t.pieces {
		for i := 0; i < tp.Remaining; i++ {
			out = append(out, tp.Rank)
		}
	}
	return out
}

// SetupZone reports whether sq is in the rows side may fill during setup:
// rows 0-3 for side A and rows 6-9 for side B.
func SetupZone(side Side, sq Square) bool {
	if !sq.Valid() {
		return false
	}
	if side == SideA {
		return sq.Y <= 3
	}
	return sq.Y >= Size-4
}

// SetupSquares returns the squares of side's setup zone in row-major order.
func SetupSquares(side Side) []Square {
	var out []Square
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			sq := Square{X: x, Y: y}
			if SetupZone(side, sq) {
				out = append(out, sq)
			}
		}
	}
	return out
}
