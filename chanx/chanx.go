package chanx

import (
	"context"
	"time"
)

// Send sends v to ch, unblocking early if ctx is cancelled.
// It returns nil on a successful send, or the context error.
func Send[T any](ctx context.Context, ch chan<- T, v T) error {
	select {
	case ch <- v:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Recv receives a value from ch, unblocking early if ctx is cancelled.
// It returns the value, a boolean indicating whether the channel is
// still open (false means ch was closed and drained), and the context
// error if cancellation won.
func Recv[T any](ctx context.Context, ch <-chan T) (T, bool, error) {
	select {
	case v, ok := <-ch:
		return v, ok, nil
	case <-ctx.Done():
		var zero T
		return zero, false, ctx.Err()
	}
}

// RecvTimeout receives a value from ch, giving up after d.
//
// A value that is already available (or an already-closed channel) is
// observed even when d <= 0, so a zero deadline is a valid immediate
// poll. When the deadline wins, nothing has been consumed: whatever
// was in flight stays in the channel for the next receive.
func RecvTimeout[T any](ch <-chan T, d time.Duration) (v T, ok bool, timedOut bool) {
	// Fast path: no timer when a value or close is already observable.
	select {
	case v, ok = <-ch:
		return v, ok, false
	default:
	}

	if d <= 0 {
		return v, false, true
	}

	t := time.NewTimer(d)
	defer t.Stop()

	select {
	case v, ok = <-ch:
		return v, ok, false
	case <-t.C:
		var zero T
		return zero, false, true
	}
}
