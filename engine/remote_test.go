package engine

import (
	"net/http"
	"net/http/httptest"
	"stratego/game"
	"stratego/searcher/agent"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func TestRemoteAgent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(agent.NewRouter(agent.ServerConfig{Evaluator: "material", Seed: 1}))
	defer srv.Close()

	t.Run("returns the server's move", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.Put(sq(0, 0), game.NewPiece(game.General, game.SideA)))
		require.NoError(t, b.Put(sq(9, 0), game.NewPiece(game.Flag, game.SideA)))
		require.NoError(t, b.Put(sq(0, 1), game.NewPiece(game.Colonel, game.SideB)))
		require.NoError(t, b.Put(sq(9, 9), game.NewPiece(game.Flag, game.SideB)))

		move, found, metric, err := NewRemoteAgent(srv.URL+"/", false, srv.Client()).FindMove(b, game.SideA)

		require.NoError(t, err)
		require.True(t, found)
		require.Equal(t, game.Move{From: sq(0, 0), To: sq(0, 1)}, move)
		require.Equal(t, "remote", metric.Evaluator)
	})

	t.Run("reports sides without moves", func(t *testing.T) {
		b := game.NewBoard()
		require.NoError(t, b.Put(sq(0, 9), game.NewPiece(game.Flag, game.SideB)))

		_, found, _, err := NewRemoteAgent(srv.URL, true, nil).FindMove(b, game.SideB)

		require.NoError(t, err)
		require.False(t, found)
	})

	t.Run("surfaces server errors", func(t *testing.T) {
		failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}))
		defer failing.Close()

		_, _, _, err := NewRemoteAgent(failing.URL, false, nil).FindMove(game.NewBoard(), game.SideA)

		require.ErrorContains(t, err, "503")
		require.ErrorContains(t, err, "overloaded")
	})

	t.Run("plays a local engine game", func(t *testing.T) {
		remote := NewRemoteAgent(srv.URL, true, srv.Client())
		e := LocalEngine([2]agent.Agent{remote, greedyAgent()}, WithSeed(8), WithMaxTurns(6))

		_, _, moveMetrics, err := e.Run()

		require.NoError(t, err)
		require.NotEmpty(t, moveMetrics)
		require.Equal(t, "remote", moveMetrics[0].Evaluator)
	})
}
