package searcher

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"reversi/experiments/metrics"
	"reversi/game"
)

func TestFindMove(t *testing.T) {
	t.Run("no moves", func(t *testing.T) {
		d := NewDeepener(game.Black, constant(0))

		move, err := d.FindMove(context.Background(), game.NewBoard(), nil, NewDeadline(time.Now(), time.Second))

		require.ErrorIs(t, err, ErrNoMoves)
		require.True(t, move.IsNone())
	})

	t.Run("single move is returned without searching", func(t *testing.T) {
		collector := metrics.NewCollector()
		collector.Start(time.Second)
		d := NewDeepener(game.Black, game.NewEvaluator(game.Black).Utility, WithMetrics(collector))
		only := []game.Move{{Row: 2, Col: 4}}

		move, err := d.FindMove(context.Background(), game.NewBoard(), only, NewDeadline(time.Now(), time.Second))

		require.NoError(t, err)
		require.Equal(t, only[0], move)
		require.Zero(t, collector.Complete().Nodes)
	})

	t.Run("expired deadline keeps the first move", func(t *testing.T) {
		s := randomPosition(3, 12)
		d := NewDeepener(s.Player(), game.NewEvaluator(s.Player()).Utility)

		move, err := d.FindMove(context.Background(), s, s.LegalMoves(), NewDeadline(time.Now(), 0))

		require.NoError(t, err)
		require.Equal(t, s.LegalMoves()[0], move)
	})

	t.Run("cancelled context keeps the first move", func(t *testing.T) {
		s := randomPosition(5, 9)
		d := NewDeepener(s.Player(), game.NewEvaluator(s.Player()).Utility)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		move, err := d.FindMove(ctx, s, s.LegalMoves(), NewDeadline(time.Now(), time.Second))

		require.NoError(t, err)
		require.Equal(t, s.LegalMoves()[0], move)
	})

	t.Run("depth one picks the first best child", func(t *testing.T) {
		for seed := uint64(1); seed <= 8; seed++ {
			s := randomPosition(seed, 14)
			moves := s.LegalMoves()
			if len(moves) < 2 {
				continue
			}
			e := game.NewEvaluator(s.Player())
			collector := metrics.NewCollector()
			collector.Start(10 * time.Second)
			d := NewDeepener(s.Player(), e.Utility, WithMaxDepth(1), WithMetrics(collector))

			move, err := d.FindMove(context.Background(), s, moves, NewDeadline(time.Now(), 10*time.Second))
			require.NoError(t, err)

			want, best := moves[0], e.Utility(s.Play(moves[0]))
			for _, m := range moves[1:] {
				if v := e.Utility(s.Play(m)); v > best {
					want, best = m, v
				}
			}
			require.Equal(t, want, move, "seed %d", seed)
			require.Equal(t, 1, collector.Complete().Depth)
		}
	})

	t.Run("result is always one of the supplied moves", func(t *testing.T) {
		for seed := uint64(1); seed <= 6; seed++ {
			s := randomPosition(seed, 20)
			moves := s.LegalMoves()
			if len(moves) == 0 {
				continue
			}
			for _, pruning := range []bool{true, false} {
				options := []Option{WithMaxDepth(3)}
				if !pruning {
					options = append(options, WithoutPruning())
				}
				d := NewDeepener(s.Player(), game.NewEvaluator(s.Player()).Utility, options...)

				move, err := d.FindMove(context.Background(), s, moves, NewDeadline(time.Now(), 5*time.Second))

				require.NoError(t, err)
				require.Contains(t, moves, move)
			}
		}
	})

	t.Run("stops deepening once the whole game tree was searched", func(t *testing.T) {
		var s game.State
		for seed := uint64(1); seed <= 50; seed++ {
			candidate := randomPosition(seed, 56)
			if len(candidate.LegalMoves()) >= 2 {
				s = candidate
				break
			}
		}
		require.NotNil(t, s, "no endgame position with a choice of moves")
		empty := game.Cells - s.Count(game.Black) - s.Count(game.White)

		collector := metrics.NewCollector()
		collector.Start(time.Minute)
		d := NewDeepener(s.Player(), game.NewEvaluator(s.Player()).Utility, WithMetrics(collector))

		move, err := d.FindMove(context.Background(), s, s.LegalMoves(), NewDeadline(time.Now(), time.Minute))

		require.NoError(t, err)
		require.Contains(t, s.LegalMoves(), move)
		stats := collector.Complete()
		require.LessOrEqual(t, stats.Depth, empty)
		require.Zero(t, stats.Interrupted)
	})

	t.Run("slow evaluation gets cut off by the deadline", func(t *testing.T) {
		s := game.NewBoard()
		e := game.NewEvaluator(game.Black)
		slow := func(s game.State) float64 {
			time.Sleep(2 * time.Millisecond)
			return e.Utility(s)
		}
		collector := metrics.NewCollector()
		collector.Start(30 * time.Millisecond)
		d := NewDeepener(game.Black, slow, WithMetrics(collector))

		start := time.Now()
		move, err := d.FindMove(context.Background(), s, s.LegalMoves(), NewDeadline(start, 30*time.Millisecond))

		require.NoError(t, err)
		require.Contains(t, s.LegalMoves(), move)
		require.GreaterOrEqual(t, collector.Complete().Interrupted, 1)
		require.Less(t, time.Since(start), time.Second)
	})

	t.Run("panic inside the search is reported", func(t *testing.T) {
		s := game.NewBoard()
		var calls atomic.Int32
		faulty := func(game.State) float64 {
			if calls.Add(1) > 1 {
				panic("evaluation blew up")
			}
			return 0
		}
		d := NewDeepener(game.Black, faulty)

		move, err := d.FindMove(context.Background(), s, s.LegalMoves(), NewDeadline(time.Now(), time.Second))

		require.ErrorIs(t, err, ErrSearchPanicked)
		require.Equal(t, s.LegalMoves()[0], move)
	})
}

// From the start every black reply leaves five discs and every white answer six, so the disc count
// tells which iteration is evaluating. At depth one only the third opening scores; at depth two the
// fourth opening scores deeper against a flat level everywhere else.
func TestFindMoveAdoption(t *testing.T) {
	s := game.NewBoard()
	moves := s.LegalMoves()
	third, fourth := moves[2], moves[3]

	scripted := func(flat, underFourth float64) game.Evaluate {
		return func(s game.State) float64 {
			if s.Count(game.Black)+s.Count(game.White) == 5 {
				if s.At(third.Row, third.Col) == game.Black {
					return 10
				}
				return 0
			}
			if s.At(fourth.Row, fourth.Col) == game.Black {
				return underFourth
			}
			return flat
		}
	}

	tests := []struct {
		name        string
		flat        float64
		underFourth float64
		options     []Option
		want        game.Move
	}{
		{"shallower result survives a worse deeper one", 5, 5, nil, third},
		{"deeper move below the carried alpha is not adopted", 5, 8, nil, third},
		{"deeper move below the shallower best is not adopted without pruning", 5, 8, []Option{WithoutPruning()}, third},
		{"strictly better deeper result replaces the shallower one", 5, 12, nil, fourth},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := metrics.NewCollector()
			collector.Start(10 * time.Second)
			options := append([]Option{WithMaxDepth(2), WithMetrics(collector)}, tt.options...)
			d := NewDeepener(game.Black, scripted(tt.flat, tt.underFourth), options...)

			move, err := d.FindMove(context.Background(), s, moves, NewDeadline(time.Now(), 10*time.Second))

			require.NoError(t, err)
			require.Equal(t, tt.want, move)
			require.Equal(t, 2, collector.Complete().Depth, "Both iterations completed")
		})
	}
}
