package metrics

import (
	"konane/game"
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Goroutines  int
	Depth       int
	Duration    time.Duration
	Nodes       int // Positions visited, leaves included
	Evaluations int // Leaves scored by the evaluation function
	Cutoffs     int // Alpha-beta prunes
	Value       float64
}

type MoveMetric struct {
	Step   int
	Player game.Side
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	ID         string
	Black      string // Agent name
	White      string // Agent name
	Winner     game.Side
	Reason     string
	StartTime  time.Time
	EndTime    time.Time
	Duration   time.Duration
	TotalMoves int
}

// Collector gathers search statistics. Implementations are safe for use by
// concurrent root searches.
type Collector interface {
	Start(goroutines, depth int)
	AddNode()
	AddEvaluation()
	AddCutoff()
	Complete() SearchMetric
}

type collector struct {
	goroutines  int
	depth       int
	startTime   time.Time
	nodes       atomic.Int64
	evaluations atomic.Int64
	cutoffs     atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(goroutines, depth int) {
	m.startTime = time.Now()
	m.goroutines = goroutines
	m.depth = depth
	m.nodes.Store(0)
	m.evaluations.Store(0)
	m.cutoffs.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Goroutines:  m.goroutines,
		Depth:       m.depth,
		Duration:    time.Since(m.startTime),
		Nodes:       int(m.nodes.Load()),
		Evaluations: int(m.evaluations.Load()),
		Cutoffs:     int(m.cutoffs.Load()),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(goroutines, depth int) {}
func (m *dummyCollector) AddNode()                    {}
func (m *dummyCollector) AddEvaluation()              {}
func (m *dummyCollector) AddCutoff()                  {}
func (m *dummyCollector) Complete() SearchMetric      { return SearchMetric{} }
