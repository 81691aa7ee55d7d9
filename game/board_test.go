package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsWater(t *testing.T) {
	t.Run("exactly the eight lake squares are water", func(t *testing.T) {
		count := 0
		for y := 0; y < Size; y++ {
			for x := 0; x < Size; x++ {
				if IsWater(Square{X: x, Y: y}) {
					count++
				}
			}
		}
		require.Equal(t, 8, count)
		for _, sq := range WaterSquares() {
			require.True(t, IsWater(sq), "%v should be water", sq)
		}
	})

	t.Run("out of bounds squares are not water", func(t *testing.T) {
		require.False(t, IsWater(Square{X: -1, Y: 4}))
		require.False(t, IsWater(Square{X: 2, Y: 10}))
	})
}

func TestBoardPut(t *testing.T) {
	t.Run("rejects water, occupied and out of bounds squares", func(t *testing.T) {
		b := NewBoard()
		require.ErrorIs(t, b.Put(Square{X: 2, Y: 4}, NewPiece(Scout, SideA)), ErrWaterSquare)
		require.ErrorIs(t, b.Put(Square{X: 10, Y: 0}, NewPiece(Scout, SideA)), ErrOutOfBounds)
		require.NoError(t, b.Put(Square{X: 0, Y: 0}, NewPiece(Scout, SideA)))
		require.ErrorIs(t, b.Put(Square{X: 0, Y: 0}, NewPiece(Spy, SideB)), ErrOccupied)
	})

	t.Run("remove returns the piece and empties the square", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Put(Square{X: 5, Y: 5}, NewPiece(Spy, SideB)))
		p, err := b.Remove(Square{X: 5, Y: 5})
		require.NoError(t, err)
		require.Equal(t, NewPiece(Spy, SideB), p)
		require.True(t, b.Empty(Square{X: 5, Y: 5}))
		_, err = b.Remove(Square{X: 5, Y: 5})
		require.ErrorIs(t, err, ErrEmptySquare)
	})
}

func TestBoardClone(t *testing.T) {
	t.Run("clone without moves equals the original", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Put(Square{X: 0, Y: 0}, NewPiece(Marshal, SideA)))
		require.NoError(t, b.Put(Square{X: 9, Y: 9}, Piece{Rank: Bomb, Side: SideB, Revealed: true}))

		c := b.Clone()

		require.True(t, b.Equal(c))
		require.Equal(t, b.Pieces(SideA), c.Pieces(SideA))
		require.Equal(t, b.Pieces(SideB), c.Pieces(SideB))
	})

	t.Run("mutating the clone leaves the original untouched", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Put(Square{X: 0, Y: 0}, NewPiece(Sergeant, SideA)))
		c := b.Clone()

		_, err := ApplyMove(c, Move{From: Square{X: 0, Y: 0}, To: Square{X: 0, Y: 1}})
		require.NoError(t, err)

		p, ok := b.At(Square{X: 0, Y: 0})
		require.True(t, ok)
		require.False(t, p.HasMoved, "original piece must not share state with the clone")
		require.False(t, b.Equal(c))
	})
}

func TestBoardJSON(t *testing.T) {
	t.Run("round trips placed pieces", func(t *testing.T) {
		b := NewBoard()
		require.NoError(t, b.Put(Square{X: 1, Y: 2}, Piece{Rank: Spy, Side: SideA, HasMoved: true}))
		require.NoError(t, b.Put(Square{X: 8, Y: 7}, Piece{Rank: Flag, Side: SideB}))

		data, err := json.Marshal(b)
		require.NoError(t, err)
		require.Contains(t, string(data), `"rank":"S"`)

		var decoded Board
		require.NoError(t, json.Unmarshal(data, &decoded))
		require.True(t, b.Equal(&decoded))
	})

	t.Run("rejects pieces on water", func(t *testing.T) {
		var decoded Board
		err := json.Unmarshal([]byte(`{"pieces":[{"x":2,"y":4,"rank":"9","side":"A"}]}`), &decoded)
		require.ErrorIs(t, err, ErrWaterSquare)
	})
}

func TestBoardString(t *testing.T) {
	b := NewBoard()
	require.NoError(t, b.Put(Square{X: 0, Y: 0}, NewPiece(Flag, SideA)))
	require.NoError(t, b.Put(Square{X: 9, Y: 9}, NewPiece(Spy, SideB)))

	rows := b.String()

	require.Equal(t, ".........s\n", rows[:11])
	require.Equal(t, "F.........\n", rows[len(rows)-11:])
	require.Contains(t, rows, "..~~..~~..")
}
