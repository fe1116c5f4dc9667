package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// AlphaBeta is a depth-limited minimax search with alpha-beta pruning.
// Every child is searched on its own copy of the state; nothing is cached between nodes.
type AlphaBeta struct {
	utility    game.Evaluate
	self       game.Color
	noMoreTime NoMoreTime
	metrics    metrics.Collector

	interrupted  bool
	depthLimited bool
}

func NewAlphaBeta(utility game.Evaluate, self game.Color, noMoreTime NoMoreTime, collector metrics.Collector) *AlphaBeta {
	if noMoreTime == nil {
		noMoreTime = never
	}
	return &AlphaBeta{
		utility:    utility,
		self:       self,
		noMoreTime: noMoreTime,
		metrics:    orDummy(collector),
	}
}

// Search returns the value of state and, at a MAX node, the move achieving it.
// Nodes where self is to move maximise. If the clock ran out anywhere in the tree the best-effort
// value is still returned, together with ErrExceededTime.
func (a *AlphaBeta) Search(state game.State, depth int, alpha, beta float64, maximizing bool) (float64, game.Move, error) {
	a.interrupted = false
	a.depthLimited = false

	value, move := a.search(state, depth, alpha, beta, maximizing)
	if a.interrupted {
		return value, move, ErrExceededTime
	}
	return value, move, nil
}

// Exhaustive reports whether the last search reached the end of every line it explored.
func (a *AlphaBeta) Exhaustive() bool {
	return !a.depthLimited && !a.interrupted
}

func (a *AlphaBeta) search(state game.State, depth int, alpha, beta float64, maximizing bool) (float64, game.Move) {
	a.metrics.AddNode()

	moves := state.LegalMoves()
	if len(moves) == 0 {
		return a.utility(state), game.NoMove
	}
	if a.noMoreTime() {
		a.interrupted = true
		return a.utility(state), game.NoMove
	}
	if depth == 0 {
		a.depthLimited = true
		return a.utility(state), game.NoMove
	}

	if state.Player() == a.self {
		currMax := -game.Infinity
		bestMove := game.NoMove
		for _, move := range moves {
			value, _ := a.search(state.Play(move), depth-1, alpha, beta, !maximizing)
			if value > currMax {
				currMax, bestMove = value, move
				// alpha follows the best value found here, even below the bound inherited from above
				alpha = currMax
			}
			if alpha >= beta {
				break
			}
		}
		return currMax, bestMove
	}

	currMin := game.Infinity
	for _, move := range moves {
		value, _ := a.search(state.Play(move), depth-1, alpha, beta, !maximizing)
		if value < currMin {
			currMin = value
			if currMin < beta {
				beta = currMin
			}
		}
		if alpha >= beta {
			break
		}
	}
	return currMin, game.NoMove
}
