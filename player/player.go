package player

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"reversi/book"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
	"reversi/utils"
)

// Player is what the game loop talks to: given the position and the legal moves, pick one of them.
type Player interface {
	GetMove(state game.State, moves []game.Move) (game.Move, error)
}

// Cancellable is implemented by players whose move search stops when ctx is cancelled.
type Cancellable interface {
	GetMoveContext(ctx context.Context, state game.State, moves []game.Move) (game.Move, error)
}

// Reporter is implemented by players that can describe how they chose their last move.
type Reporter interface {
	LastSearch() metrics.SearchMetric
}

var ErrInvalidConfig = errors.New("invalid agent configuration")

type Option func(a *Agent)

// Agent plays one side with a time-bounded iterative deepening search, opening with the book.
type Agent struct {
	color     game.Color
	budget    searcher.Budget
	turn      int // Moves asked of this agent so far, drives the per-block allocation
	book      *book.Book
	follower  *book.Follower
	evaluator *game.Evaluator
	deepener  *searcher.Deepener
	metrics   metrics.Collector

	searchOptions []searcher.Option
	last          metrics.SearchMetric
}

// WithBook opens from b instead of the embedded book.
func WithBook(b *book.Book) Option {
	return func(a *Agent) {
		if b != nil {
			a.book = b
		}
	}
}

// WithoutBook searches every move, including the opening.
func WithoutBook() Option {
	return func(a *Agent) {
		a.book = nil
	}
}

func WithMaxDepth(depth int) Option {
	return func(a *Agent) {
		a.searchOptions = append(a.searchOptions, searcher.WithMaxDepth(depth))
	}
}

// WithoutPruning searches with plain minimax.
func WithoutPruning() Option {
	return func(a *Agent) {
		a.searchOptions = append(a.searchOptions, searcher.WithoutPruning())
	}
}

// WithMargin changes the safety time shaved off every move's allotment.
func WithMargin(margin time.Duration) Option {
	return func(a *Agent) {
		if margin >= 0 {
			a.budget.Margin = margin
		}
	}
}

func WithMetrics(collector metrics.Collector) Option {
	return func(a *Agent) {
		if collector != nil {
			a.metrics = collector
		}
	}
}

// NewAgent builds an agent for color that must answer every block of k moves within timePerK.
// Construction, including loading the opening book, is expected to fit in setupTime.
func NewAgent(setupTime time.Duration, color game.Color, timePerK time.Duration, k int, options ...Option) (*Agent, error) {
	start := time.Now()
	switch {
	case color != game.Black && color != game.White:
		return nil, fmt.Errorf("%w: agent must play black or white", ErrInvalidConfig)
	case k < 1:
		return nil, fmt.Errorf("%w: k must be at least 1, got %d", ErrInvalidConfig, k)
	case timePerK <= 0:
		return nil, fmt.Errorf("%w: time per %d moves must be positive, got %v", ErrInvalidConfig, k, timePerK)
	case setupTime < 0:
		return nil, fmt.Errorf("%w: negative setup time %v", ErrInvalidConfig, setupTime)
	}

	a := &Agent{ // Default values
		color:     color,
		budget:    searcher.NewBudget(timePerK, k),
		book:      book.Default(),
		evaluator: game.NewEvaluator(color),
		metrics:   metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(a)
	}

	if a.book != nil {
		a.follower = book.NewFollower(a.book)
	}
	a.deepener = searcher.NewDeepener(color, a.evaluator.Utility, append(a.searchOptions, searcher.WithMetrics(a.metrics))...)

	if elapsed := time.Since(start); setupTime > 0 && elapsed > setupTime {
		log.Warn().Dur("elapsed", elapsed).Dur("setup", setupTime).Msgf("agent %s took longer than its setup time", color)
	}
	return a, nil
}

func (a *Agent) Color() game.Color {
	return a.color
}

// GetMove answers with one of moves before this turn's allotment runs out. The book is consulted
// first; otherwise the move comes from iterative deepening, falling back to the first move.
// A search failure is returned together with the move that was chosen anyway.
func (a *Agent) GetMove(state game.State, moves []game.Move) (game.Move, error) {
	return a.GetMoveContext(context.Background(), state, moves)
}

// GetMoveContext is GetMove with a search that also stops once ctx is done.
func (a *Agent) GetMoveContext(ctx context.Context, state game.State, moves []game.Move) (game.Move, error) {
	start := time.Now()
	allotted := a.budget.Allot(a.turn)
	a.turn++
	a.metrics.Start(allotted)
	defer func() {
		a.last = a.metrics.Complete()
	}()

	if len(moves) == 0 {
		return game.NoMove, searcher.ErrNoMoves
	}
	if len(moves) == 1 {
		a.record(state, moves[0])
		return moves[0], nil
	}

	if a.follower != nil {
		if move, ok := a.follower.Next(state, moves); ok {
			a.metrics.SetBookHit()
			log.Debug().Str("history", a.follower.History()).Stringer("move", move).Msg("book move")
			return move, nil
		}
	}

	deadline := searcher.NewDeadline(start, allotted)
	move, err := a.deepener.FindMove(ctx, state, moves, deadline)
	if !utils.Contains(moves, move) {
		move = moves[0]
	}
	a.record(state, move)
	if err != nil {
		return move, fmt.Errorf("agent %s: %w", a.color, err)
	}
	return move, nil
}

// LastSearch reports how the previous move was chosen.
func (a *Agent) LastSearch() metrics.SearchMetric {
	return a.last
}

func (a *Agent) record(state game.State, move game.Move) {
	if a.follower == nil {
		return
	}
	a.follower.Observe(state)
	a.follower.Record(state, move)
}
