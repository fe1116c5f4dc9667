package searcher

import (
	"reversi/experiments/metrics"
	"reversi/game"
)

// NoMoreTime reports that the current move has used up its time.
type NoMoreTime func() bool

// Searcher is a depth-limited game-tree search rooted at state.
// The returned move is game.NoMove at MIN nodes and terminal positions.
type Searcher interface {
	Search(state game.State, depth int, alpha, beta float64, maximizing bool) (float64, game.Move, error)
}

func never() bool { return false }

func orDummy(c metrics.Collector) metrics.Collector {
	if c == nil {
		return metrics.NewDummyCollector()
	}
	return c
}
