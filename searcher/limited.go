package searcher

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var (
	// ErrExceededTime reports a computation that did not finish within its limit.
	ErrExceededTime = errors.New("exceeded time limit")
	// ErrSearchPanicked wraps a panic raised by a time-limited computation.
	ErrSearchPanicked = errors.New("search panicked")
)

// RunWithLimitedTime runs fn on its own goroutine and waits up to limit for it.
// It returns fn's result and runtime, or ErrExceededTime once the limit passes. In that case the
// context handed to fn is cancelled; fn is expected to notice and return, but the caller does not wait.
// A panic inside fn is returned as an error wrapping ErrSearchPanicked.
func RunWithLimitedTime[T any](ctx context.Context, limit time.Duration, fn func(context.Context) (T, error)) (T, time.Duration, error) {
	var zero T
	if limit <= 0 {
		return zero, 0, ErrExceededTime
	}

	type outcome struct {
		value   T
		err     error
		runtime time.Duration
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan outcome, 1)

	go func() {
		start := time.Now()
		defer func() {
			if r := recover(); r != nil {
				done <- outcome{err: fmt.Errorf("%w: %v", ErrSearchPanicked, r), runtime: time.Since(start)}
			}
		}()
		value, err := fn(ctx)
		done <- outcome{value: value, err: err, runtime: time.Since(start)}
	}()

	timer := time.NewTimer(limit)
	defer timer.Stop()

	select {
	case out := <-done:
		cancel()
		return out.value, out.runtime, out.err
	case <-timer.C:
		cancel()
		return zero, limit, ErrExceededTime
	case <-ctx.Done():
		err := ctx.Err()
		cancel()
		return zero, 0, err
	}
}
