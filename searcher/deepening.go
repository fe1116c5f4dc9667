package searcher

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/utils"
)

var ErrNoMoves = errors.New("no legal moves to choose from")

type Option func(d *Deepener)

// Deepener runs a depth-limited search at depth 1, 2, ... until the move's deadline and keeps the
// best result among the iterations that finished in time.
type Deepener struct {
	self     game.Color
	utility  game.Evaluate
	maxDepth int
	pruning  bool
	metrics  metrics.Collector
}

// WithMaxDepth stops deepening after depth plies even if time remains.
func WithMaxDepth(depth int) Option {
	return func(d *Deepener) {
		if depth > 0 {
			d.maxDepth = depth
		}
	}
}

// WithoutPruning searches with plain minimax instead of alpha-beta.
func WithoutPruning() Option {
	return func(d *Deepener) {
		d.pruning = false
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(d *Deepener) {
		if collector != nil {
			d.metrics = collector
		}
	}
}

func NewDeepener(self game.Color, utility game.Evaluate, options ...Option) *Deepener {
	if utility == nil {
		panic("deepener needs a utility function")
	}
	d := &Deepener{ // Default values
		self:    self,
		utility: utility,
		pruning: true,
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(d)
	}
	return d
}

type exhaustive interface {
	Exhaustive() bool
}

type iteration struct {
	value      float64
	move       game.Move
	exhaustive bool
}

func (d *Deepener) searcher(noMoreTime NoMoreTime) Searcher {
	if d.pruning {
		return NewAlphaBeta(d.utility, d.self, noMoreTime, d.metrics)
	}
	return NewMiniMax(d.utility, d.self, noMoreTime, d.metrics)
}

// FindMove picks one of moves for state before deadline. A lone move is returned without searching.
// The first move, scored by the utility of the position it leads to, is the baseline a search result
// has to beat strictly. Iterations cut off by the clock are discarded. Any other failure is returned
// together with the best move found so far.
func (d *Deepener) FindMove(ctx context.Context, state game.State, moves []game.Move, deadline *Deadline) (game.Move, error) {
	if len(moves) == 0 {
		return game.NoMove, ErrNoMoves
	}
	if len(moves) == 1 {
		return moves[0], nil
	}

	bestMove := moves[0]
	bestUtility := d.utility(state.Play(bestMove))
	alpha, maxSeen := -game.Infinity, -game.Infinity

	for depth := 1; d.maxDepth == 0 || depth <= d.maxDepth; depth++ {
		if deadline.Expired() || ctx.Err() != nil {
			break
		}

		rootAlpha := alpha
		result, runtime, err := RunWithLimitedTime(ctx, deadline.Remaining(), func(ctx context.Context) (iteration, error) {
			s := d.searcher(func() bool {
				return deadline.Expired() || ctx.Err() != nil
			})
			value, move, err := s.Search(state, depth, rootAlpha, game.Infinity, true)
			done := false
			if e, ok := s.(exhaustive); ok {
				done = e.Exhaustive()
			}
			return iteration{value: value, move: move, exhaustive: done}, err
		})

		if errors.Is(err, ErrExceededTime) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			d.metrics.AddInterrupted()
			log.Debug().Int("depth", depth).Msg("iteration cut off by the clock, keeping the previous result")
			break
		}
		if err != nil {
			return bestMove, fmt.Errorf("search at depth %d failed: %w", depth, err)
		}

		d.metrics.CompleteDepth(depth, result.value)
		log.Debug().
			Int("depth", depth).
			Float64("utility", result.value).
			Stringer("move", result.move).
			Dur("runtime", runtime).
			Msg("completed iteration")

		if result.value > bestUtility && utils.Contains(moves, result.move) {
			bestMove, bestUtility = result.move, result.value
		}
		if result.value > maxSeen {
			alpha, maxSeen = result.value, result.value
		}
		if result.exhaustive {
			break
		}
	}

	return bestMove, nil
}
