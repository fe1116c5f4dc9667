package searcher

import "time"

// Budget splits PerK over every block of K moves.
type Budget struct {
	PerK   time.Duration
	K      int
	Margin time.Duration
}

func NewBudget(perK time.Duration, k int) Budget {
	if k < 1 {
		panic("budget needs at least one move per block")
	}
	return Budget{PerK: perK, K: k, Margin: DefaultMargin}
}

// Allot returns the time for the turn-th move of the game (0-based).
// The first move of each block gets FirstMoveShare of the average; the other K-1 moves split the rest evenly.
// With K == 1 there is nothing to borrow from, so the single move gets the whole block.
func (b Budget) Allot(turn int) time.Duration {
	average := float64(b.PerK) / float64(b.K)

	var allotted float64
	switch {
	case b.K == 1:
		// Departs from the block schedule, whose first-move share would take 1.2x a one-move block
		allotted = average
	case turn%b.K == 0:
		allotted = FirstMoveShare * average
	default:
		allotted = (float64(b.K) - FirstMoveShare) / float64(b.K-1) * average
	}

	d := time.Duration(allotted) - b.Margin
	if d < 0 {
		return 0
	}
	return d
}

// Deadline is the time allotted to one move, counted from the moment the move started.
// It is never extended.
type Deadline struct {
	start    time.Time
	allotted time.Duration
}

func NewDeadline(start time.Time, allotted time.Duration) *Deadline {
	return &Deadline{start: start, allotted: allotted}
}

func (d *Deadline) Expired() bool {
	return time.Since(d.start) >= d.allotted
}

func (d *Deadline) Remaining() time.Duration {
	left := d.allotted - time.Since(d.start)
	if left < 0 {
		return 0
	}
	return left
}

func (d *Deadline) Allotted() time.Duration {
	return d.allotted
}
