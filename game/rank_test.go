package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRank(t *testing.T) {
	t.Run("symbols round trip", func(t *testing.T) {
		for _, r := range Ranks {
			parsed, err := ParseRank(r.Symbol())
			require.NoError(t, err)
			require.Equal(t, r, parsed)
		}
		_, err := ParseRank('X')
		require.Error(t, err)
	})

	t.Run("numbered ranks carry their symbol as strength", func(t *testing.T) {
		require.Equal(t, 1, Marshal.Strength())
		require.Equal(t, 3, Miner.Strength())
		require.Equal(t, 9, Scout.Strength())
		require.Greater(t, Spy.Strength(), Scout.Strength())
	})

	t.Run("bomb and flag are immovable", func(t *testing.T) {
		require.False(t, Bomb.Movable())
		require.False(t, Flag.Movable())
		require.True(t, Spy.Movable())
		require.False(t, Rank(0).Movable())
	})
}
