package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/player"
	"reversi/searcher"
	"reversi/utils"
)

// Local runs a game between two in-process players.
type Local struct {
	State   game.State
	players map[game.Color]player.Player
	limit   time.Duration
}

// LocalEngine sets up a game from the standard start. limit is the hard cap on a single move;
// a player that exceeds it, fails, or answers with an illegal move forfeits.
func LocalEngine(black, white player.Player, limit time.Duration) *Local {
	if black == nil || white == nil {
		panic("need two players")
	}
	return &Local{
		State:   game.NewBoard(),
		players: map[game.Color]player.Player{game.Black: black, game.White: white},
		limit:   limit,
	}
}

// Run executes the entire game loop until neither side can move. A cancelled ctx aborts the game:
// no winner is declared and the error wraps ErrAborted together with the context's error.
func (e *Local) Run(ctx context.Context) (game.Color, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	var moveMetrics []metrics.MoveMetric

	log.Debug().Msgf("player %s is starting", e.State.Player())

	winner := game.Empty
	for step := 1; step <= MaxMoves; {
		if err := ctx.Err(); err != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%w at step %d: %w", ErrAborted, step, err)
		}

		moves := e.State.LegalMoves()
		if len(moves) == 0 {
			passed := e.State.WithPlayer(game.Opponent(e.State.Player()))
			if len(passed.LegalMoves()) == 0 {
				break
			}
			log.Debug().Msgf("player %s has no moves and passes", e.State.Player())
			e.State = passed
			continue
		}

		mover := e.State.Player()
		move, runtime, err := e.ask(ctx, mover, moves)
		if ctxErr := ctx.Err(); ctxErr != nil {
			return game.Empty, gameMetric, moveMetrics, fmt.Errorf("%w at step %d: %w", ErrAborted, step, ctxErr)
		}
		if err != nil {
			log.Warn().Err(err).Int("step", step).Msgf("player %s forfeits", mover)
			winner = game.Opponent(mover)
			gameMetric.Forfeit = true
			break
		}

		search := metrics.SearchMetric{Duration: runtime}
		if r, ok := e.players[mover].(player.Reporter); ok {
			search = r.LastSearch()
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       mover.String(),
			SearchMetric: search,
		})

		e.State = e.State.Play(move)
		step++
	}

	if !gameMetric.Forfeit {
		winner = e.State.Winner()
	}

	gameMetric.Winner = winner.String()
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Debug().
		Int("black", e.State.Count(game.Black)).
		Int("white", e.State.Count(game.White)).
		Msgf("game over, winner: %s", winner)

	return winner, gameMetric, moveMetrics, nil
}

func (e *Local) ask(ctx context.Context, mover game.Color, moves []game.Move) (game.Move, time.Duration, error) {
	state := e.State
	p := e.players[mover]
	move, runtime, err := searcher.RunWithLimitedTime(ctx, e.limit, func(ctx context.Context) (game.Move, error) {
		if c, ok := p.(player.Cancellable); ok {
			return c.GetMoveContext(ctx, state, moves)
		}
		return p.GetMove(state, moves)
	})
	if err != nil {
		return move, runtime, err
	}
	if !utils.Contains(moves, move) {
		return move, runtime, fmt.Errorf("%w: %v", ErrIllegalMove, move)
	}
	return move, runtime, nil
}
