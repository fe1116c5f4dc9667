package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// MiniMax is the plain depth-limited minimax search, without pruning.
type MiniMax struct {
	utility    game.Evaluate
	self       game.Color
	noMoreTime NoMoreTime
	metrics    metrics.Collector

	interrupted  bool
	depthLimited bool
}

func NewMiniMax(utility game.Evaluate, self game.Color, noMoreTime NoMoreTime, collector metrics.Collector) *MiniMax {
	if noMoreTime == nil {
		noMoreTime = never
	}
	return &MiniMax{
		utility:    utility,
		self:       self,
		noMoreTime: noMoreTime,
		metrics:    orDummy(collector),
	}
}

// Search ignores alpha and beta; they are accepted so MiniMax can stand in for AlphaBeta.
func (m *MiniMax) Search(state game.State, depth int, _, _ float64, maximizing bool) (float64, game.Move, error) {
	m.interrupted = false
	m.depthLimited = false
	value, move := m.search(state, depth, maximizing)
	if m.interrupted {
		return value, move, ErrExceededTime
	}
	return value, move, nil
}

// Exhaustive reports whether the last search reached the end of every line.
func (m *MiniMax) Exhaustive() bool {
	return !m.depthLimited && !m.interrupted
}

func (m *MiniMax) search(state game.State, depth int, maximizing bool) (float64, game.Move) {
	m.metrics.AddNode()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return m.utility(state), game.NoMove
	}
	if m.noMoreTime() {
		m.interrupted = true
		return m.utility(state), game.NoMove
	}
	if depth == 0 {
		m.depthLimited = true
		return m.utility(state), game.NoMove
	}

	if state.Player() == m.self {
		currMax := -game.Infinity
		bestMove := game.NoMove
		for _, move := range moves {
			value, _ := m.search(state.Play(move), depth-1, !maximizing)
			if value > currMax {
				currMax, bestMove = value, move
			}
		}
		return currMax, bestMove
	}

	currMin := game.Infinity
	for _, move := range moves {
		value, _ := m.search(state.Play(move), depth-1, !maximizing)
		if value < currMin {
			currMin = value
		}
	}
	return currMin, game.NoMove
}
