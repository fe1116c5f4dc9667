package searcher

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBudgetAllot(t *testing.T) {
	t.Run("front-loads the first move of each block", func(t *testing.T) {
		b := NewBudget(30*time.Second, 3)

		require.InDelta(t, 11.95, b.Allot(0).Seconds(), 1e-6)
		require.InDelta(t, 8.95, b.Allot(1).Seconds(), 1e-6)
		require.InDelta(t, 8.95, b.Allot(2).Seconds(), 1e-6)
		require.InDelta(t, 11.95, b.Allot(3).Seconds(), 1e-6, "Next block starts over")
	})

	t.Run("a block spends exactly its budget apart from the margins", func(t *testing.T) {
		for _, k := range []int{2, 3, 5, 10} {
			b := NewBudget(12*time.Second, k)
			total := time.Duration(0)
			for turn := 0; turn < k; turn++ {
				total += b.Allot(turn) + b.Margin
			}
			require.InDelta(t, b.PerK.Seconds(), total.Seconds(), 1e-6, "k=%d", k)
		}
	})

	t.Run("a single-move block gets the whole budget", func(t *testing.T) {
		b := NewBudget(2*time.Second, 1)

		require.InDelta(t, 1.95, b.Allot(0).Seconds(), 1e-6)
		require.InDelta(t, 1.95, b.Allot(7).Seconds(), 1e-6)
	})

	t.Run("never negative", func(t *testing.T) {
		b := NewBudget(30*time.Millisecond, 3)

		require.Zero(t, b.Allot(1))
	})

	t.Run("panics without moves per block", func(t *testing.T) {
		require.Panics(t, func() { NewBudget(time.Second, 0) })
	})
}

func TestDeadline(t *testing.T) {
	t.Run("running deadline", func(t *testing.T) {
		d := NewDeadline(time.Now(), time.Hour)

		require.False(t, d.Expired())
		require.Greater(t, d.Remaining(), 59*time.Minute)
		require.Equal(t, time.Hour, d.Allotted())
	})

	t.Run("passed deadline", func(t *testing.T) {
		d := NewDeadline(time.Now().Add(-2*time.Second), time.Second)

		require.True(t, d.Expired())
		require.Zero(t, d.Remaining())
	})

	t.Run("zero allotment is expired from the start", func(t *testing.T) {
		require.True(t, NewDeadline(time.Now(), 0).Expired())
	})
}
