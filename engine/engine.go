package engine

import (
	"context"
	"errors"

	"reversi/experiments/metrics"
	"reversi/game"
)

// MaxMoves bounds a game; Reversi needs at most one placement per empty cell.
const MaxMoves = game.Cells

var (
	ErrIllegalMove = errors.New("illegal move")
	// ErrAborted reports a game stopped from outside before it was decided.
	ErrAborted = errors.New("game aborted")
)

type Engine interface {
	// Run plays a game till neither side can move or one side forfeits
	Run(ctx context.Context) (winner game.Color, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}

var _ Engine = (*Local)(nil)
