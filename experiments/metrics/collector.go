package metrics

import (
	"sync"
	"sync/atomic"
	"time"
)

// SearchMetric summarises how one move was chosen.
type SearchMetric struct {
	Allotted    time.Duration
	Duration    time.Duration
	Depth       int // Deepest completed iteration
	Nodes       int
	Interrupted int // Iterations cut off by the clock
	BookHit     bool
	Utility     float64
}

type MoveMetric struct {
	Step   int
	Player string
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string
	Forfeit        bool
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

// Collector gathers search statistics for one move at a time.
// Node counts may be reported from a search goroutine the caller has already given up on.
type Collector interface {
	Start(allotted time.Duration)
	AddNode()
	CompleteDepth(depth int, utility float64)
	AddInterrupted()
	SetBookHit()
	Complete() SearchMetric
}

type collector struct {
	mu          sync.Mutex
	allotted    time.Duration
	startTime   time.Time
	depth       int
	utility     float64
	interrupted int
	bookHit     bool
	nodes       atomic.Int64
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(allotted time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.allotted = allotted
	m.startTime = time.Now()
	m.depth = 0
	m.utility = 0
	m.interrupted = 0
	m.bookHit = false
	m.nodes.Store(0)
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) CompleteDepth(depth int, utility float64) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if depth > m.depth {
		m.depth = depth
		m.utility = utility
	}
}

func (m *collector) AddInterrupted() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.interrupted++
}

func (m *collector) SetBookHit() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.bookHit = true
}

func (m *collector) Complete() SearchMetric {
	m.mu.Lock()
	defer m.mu.Unlock()

	return SearchMetric{
		Allotted:    m.allotted,
		Duration:    time.Since(m.startTime),
		Depth:       m.depth,
		Nodes:       int(m.nodes.Load()),
		Interrupted: m.interrupted,
		BookHit:     m.bookHit,
		Utility:     m.utility,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(allotted time.Duration)             {}
func (m *dummyCollector) AddNode()                                 {}
func (m *dummyCollector) CompleteDepth(depth int, utility float64) {}
func (m *dummyCollector) AddInterrupted()                          {}
func (m *dummyCollector) SetBookHit()                              {}
func (m *dummyCollector) Complete() SearchMetric                   { return SearchMetric{} }
