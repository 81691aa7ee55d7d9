package game

import (
	"fmt"
	"sort"
)

// Evaluator scores a board from the perspective of a side; higher is better
// for that side. Implementations may be slow (a trained model behind it) but
// are called synchronously.
type Evaluator interface {
	Score(b *Board, perspective Side) (float64, error)
}

// EvaluatorFunc adapts a plain function to Evaluator.
type EvaluatorFunc func(b *Board, perspective Side) (float64, error)

func (f EvaluatorFunc) Score(b *Board, perspective Side) (float64, error) {
	return f(b, perspective)
}

// Evaluators are the built-in heuristics by name.
var Evaluators = map[string]Evaluator{
	"material": EvaluatorFunc(EvaluateMaterial),
	"mobility": EvaluatorFunc(EvaluateMobility),
	"linear":   DefaultLinearEvaluator(),
}

// LookupEvaluator returns the built-in evaluator called name.
func LookupEvaluator(name string) (Evaluator, error) {
	e, ok := Evaluators[name]
	if !ok {
		names := make([]string, 0, len(Evaluators))
		for n := range Evaluators {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown evaluator %q (known: %v)", name, names)
	}
	return e, nil
}

var pieceValues = map[Rank]float64{
	Marshal:    400,
	General:    300,
	Miner:      100,
	Colonel:    175,
	Major:      140,
	Captain:    100,
	Lieutenant: 50,
	Sergeant:   25,
	Scout:      30,
	Spy:        200,
	Bomb:       20,
	Flag:       0,
}

// EvaluateMaterial tallies each side's piece values to a score between -1
// and 1. A side without its flag has lost.
func EvaluateMaterial(b *Board, perspective Side) (float64, error) {
	if done, score := flagScore(b, perspective); done {
		return score, nil
	}
	material := map[Side]float64{}
	for _, side := range []Side{SideA, SideB} {
		for _, pp := range b.Pieces(side) {
			material[side] += pieceValues[pp.Rank]
		}
	}
	return normalize(material[perspective], material[perspective.Opponent()]), nil
}

// EvaluateMobility blends material with the balance of legal moves, so
// positions that trap the opponent's movable pieces rank higher.
func EvaluateMobility(b *Board, perspective Side) (float64, error) {
	materialScore, err := EvaluateMaterial(b, perspective)
	if err != nil {
		return 0, err
	}
	if materialScore == 1 || materialScore == -1 {
		return materialScore, nil
	}
	own := float64(len(LegalMoves(b, perspective)))
	opp := float64(len(LegalMoves(b, perspective.Opponent())))
	if opp == 0 && own > 0 {
		return 1, nil
	}
	return (2*materialScore + normalize(own, opp)) / 3, nil
}

func flagScore(b *Board, perspective Side) (bool, float64) {
	if b.Count(perspective, Flag) == 0 {
		return true, -1
	}
	if b.Count(perspective.Opponent(), Flag) == 0 {
		return true, 1
	}
	return false, 0
}

// normalize normalizes value relative to otherValue to a score between -1 and 1
func normalize(value float64, otherValue float64) float64 {
	total := value + otherValue
	if total == 0 {
		return 0
	}
	return (value - otherValue) / total
}

// LinearEvaluator scores the one-hot planes against a fixed weight set. It
// stands in for a trained model that consumes the same encoding.
type LinearEvaluator struct {
	Weights Planes
	Bias    float64
}

// planeWeights weigh one piece on each plane, own pieces positive.
var planeWeights = [NumPlanes]float64{
	PlaneOwnImmovable:        0.5,
	PlaneOwnMovable:          1,
	PlaneEnemyKnownMovable:   -1,
	PlaneEnemyKnownBomb:      -0.5,
	PlaneEnemyUnknownMoved:   -1,
	PlaneEnemyUnknownUnmoved: -1,
}

// DefaultLinearEvaluator counts pieces per plane, scaled by a full army of 40.
func DefaultLinearEvaluator() LinearEvaluator {
	var weights Planes
	for i, w := range planeWeights {
		for y := range weights[i] {
			for x := range weights[i][y] {
				weights[i][y][x] = w / 40
			}
		}
	}
	return LinearEvaluator{Weights: weights}
}

func (l LinearEvaluator) Score(b *Board, perspective Side) (float64, error) {
	if done, score := flagScore(b, perspective); done {
		return score, nil
	}
	planes := EncodePlanes(b, perspective)
	score := l.Bias
	for i := range planes {
		for y := range planes[i] {
			for x, v := range planes[i][y] {
				score += v * l.Weights[i][y][x]
			}
		}
	}
	return score, nil
}
