package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTray(t *testing.T) {
	t.Run("standard tray holds forty pieces", func(t *testing.T) {
		tray := NewTray(SideA)
		require.Equal(t, 40, tray.Total())
		require.Equal(t, 8, tray.Remaining(Scout))
		require.Equal(t, 6, tray.Remaining(Bomb))
		require.Equal(t, 1, tray.Remaining(Flag))
		require.Len(t, tray.Unplaced(), 40)
	})

	t.Run("take decrements until empty", func(t *testing.T) {
		tray := NewTray(SideB)
		require.NoError(t, tray.Take(Flag))
		require.Equal(t, 0, tray.Remaining(Flag))
		require.ErrorIs(t, tray.Take(Flag), ErrTrayEmpty)
		require.Equal(t, 39, tray.Total())
	})

	t.Run("return undoes a take but never overfills", func(t *testing.T) {
		tray := NewTray(SideA)
		require.ErrorIs(t, tray.Return(Spy), ErrTrayIsFull)
		require.NoError(t, tray.Take(Spy))
		require.NoError(t, tray.Return(Spy))
		require.Equal(t, 1, tray.Remaining(Spy))
	})

	t.Run("ranks outside the distribution are rejected", func(t *testing.T) {
		tray := NewTrayWith(SideA, map[Rank]int{Flag: 1})
		require.ErrorIs(t, tray.Take(Scout), ErrNotInTray)
		require.NoError(t, tray.Take(Flag))
		require.True(t, tray.Empty())
	})
}

func TestSetupZone(t *testing.T) {
	require.True(t, SetupZone(SideA, sq(0, 0)))
	require.True(t, SetupZone(SideA, sq(9, 3)))
	require.False(t, SetupZone(SideA, sq(0, 4)))
	require.False(t, SetupZone(SideA, sq(0, 6)))
	require.True(t, SetupZone(SideB, sq(0, 6)))
	require.False(t, SetupZone(SideB, sq(0, 5)))
	require.Len(t, SetupSquares(SideA), 40)
	require.Len(t, SetupSquares(SideB), 40)
}
