package agent

import (
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	"stratego/game"
	"stratego/searcher"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ServerConfig chooses the evaluator used when a request does not name one.
type ServerConfig struct {
	Evaluator string
	Fallback  searcher.Fallback
	Seed      uint64
}

type findMoveRequest struct {
	Board     *game.Board `json:"board"`
	Side      *game.Side  `json:"side"`
	Explore   bool        `json:"explore"`
	Evaluator string      `json:"evaluator"`
}

type findMoveResponse struct {
	Move  *game.Move `json:"move"`
	Found bool       `json:"found"`
}

type legalMovesRequest struct {
	Board *game.Board `json:"board"`
	Side  *game.Side  `json:"side"`
}

type server struct {
	config ServerConfig
	seed   atomic.Uint64
}

// NewRouter returns the agent HTTP routes. Every request searches its own
// board, so handlers share nothing but the seed counter.
func NewRouter(config ServerConfig) *gin.Engine {
	if config.Evaluator == "" {
		config.Evaluator = "material"
	}
	s := &server{config: config}
	s.seed.Store(config.Seed)

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.POST("/findmove", s.handleFindMove)
	r.POST("/legal-moves", handleLegalMoves)

	return r
}

// StartAgentServer starts an agent HTTP server on the given address.
func StartAgentServer(addr string, config ServerConfig) error {
	log.Info().Msgf("starting agent server on %s (evaluator %s, fallback %v)", addr, config.Evaluator, config.Fallback)
	return NewRouter(config).Run(addr)
}

func (s *server) handleFindMove(c *gin.Context) {
	var req findMoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Board == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board required"})
		return
	}
	if req.Side == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "side required"})
		return
	}

	name := req.Evaluator
	if name == "" {
		name = s.config.Evaluator
	}
	evaluator, err := game.LookupEvaluator(name)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	greedy := searcher.NewGreedy(
		evaluator,
		searcher.WithEvaluatorName(name),
		searcher.WithExplore(req.Explore),
		searcher.WithFallback(s.config.Fallback),
		searcher.WithSeed(s.seed.Add(1)),
	)
	move, found, _, err := NewEvaluationAgent(greedy).FindMove(req.Board, *req.Side)
	if err != nil {
		status := http.StatusInternalServerError
		if !errors.Is(err, searcher.ErrEvaluator) {
			status = http.StatusBadRequest
		}
		log.Error().Err(err).Msgf("search for side %v failed", *req.Side)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	res := findMoveResponse{Found: found}
	if found {
		res.Move = &move
	}
	c.JSON(http.StatusOK, res)
}

func handleLegalMoves(c *gin.Context) {
	var req legalMovesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Board == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "board required"})
		return
	}
	if req.Side == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "side required"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"moves": game.LegalMoves(req.Board, *req.Side)})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}
