package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"stratego/experiments/metrics"
	"stratego/game"
	"stratego/searcher/agent"
	"strings"
	"time"
)

// remoteAgent asks an agent server over HTTP for its moves.
type remoteAgent struct {
	url     string
	explore bool
	client  *http.Client
}

// NewRemoteAgent returns an agent backed by the /findmove endpoint of the
// agent server at baseURL.
func NewRemoteAgent(baseURL string, explore bool, client *http.Client) agent.Agent {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &remoteAgent{
		url:     strings.TrimSuffix(baseURL, "/") + "/findmove",
		explore: explore,
		client:  client,
	}
}

func (a *remoteAgent) FindMove(b *game.Board, side game.Side) (game.Move, bool, metrics.SearchMetric, error) {
	start := time.Now()
	payload := struct {
		Board   *game.Board `json:"board"`
		Side    game.Side   `json:"side"`
		Explore bool        `json:"explore"`
	}{
		Board:   b,
		Side:    side,
		Explore: a.explore,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return game.Move{}, false, metrics.SearchMetric{}, err
	}

	resp, err := a.client.Post(a.url, "application/json", bytes.NewReader(body))
	if err != nil {
		return game.Move{}, false, metrics.SearchMetric{}, fmt.Errorf("requesting move: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		out, _ := io.ReadAll(resp.Body)
		return game.Move{}, false, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, bytes.TrimSpace(out))
	}

	var res struct {
		Move  *game.Move `json:"move"`
		Found bool       `json:"found"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil {
		return game.Move{}, false, metrics.SearchMetric{}, fmt.Errorf("decoding move: %w", err)
	}
	metric := metrics.SearchMetric{Evaluator: "remote", Explore: a.explore, Duration: time.Since(start)}
	if !res.Found || res.Move == nil {
		return game.Move{}, false, metric, nil
	}
	return *res.Move, true, metric, nil
}
