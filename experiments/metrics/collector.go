package metrics

import (
	"time"
)

type SearchMetric struct {
	Evaluator   string
	Explore     bool
	Candidates  int
	Evaluations int
	BestScore   float64
	Fallback    bool
	Duration    time.Duration
}

type MoveMetric struct {
	Step    int
	Player  string // Side
	Move    string
	Outcome string
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer string // Side
	Winner         string // Side, "" if no winner within the turn limit
	Reason         string
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector records one search call. Searches are single-threaded, so no
// synchronisation is needed.
type Collector interface {
	Start(evaluator string, explore bool)
	SetCandidates(n int)
	AddEvaluation(score float64)
	SetFallback()
	Complete() SearchMetric
}

type collector struct {
	metric    SearchMetric
	startTime time.Time
	scored    bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(evaluator string, explore bool) {
	m.startTime = time.Now()
	m.scored = false
	m.metric = SearchMetric{Evaluator: evaluator, Explore: explore}
}

func (m *collector) SetCandidates(n int) {
	m.metric.Candidates = n
}

func (m *collector) AddEvaluation(score float64) {
	if !m.scored || score > m.metric.BestScore {
		m.metric.BestScore = score
	}
	m.scored = true
	m.metric.Evaluations++
}

func (m *collector) SetFallback() {
	m.metric.Fallback = true
}

func (m *collector) Complete() SearchMetric {
	m.metric.Duration = time.Since(m.startTime)
	return m.metric
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(evaluator string, explore bool) {}
func (m *dummyCollector) SetCandidates(n int)                  {}
func (m *dummyCollector) AddEvaluation(score float64)          {}
func (m *dummyCollector) SetFallback()                         {}
func (m *dummyCollector) Complete() SearchMetric               { return SearchMetric{} }
