package peekable

import (
	"bufio"
	"context"
	"io"

	"github.com/baxromumarov/peekable/chanx"
)

// Source is the pull side of a sequence of items.
//
// Next returns the next item. It returns [io.EOF] once the sequence is
// exhausted; any other error is a per-item failure that does not end
// the sequence, and a later Next may still succeed. Next may block for
// as long as it needs and should honor ctx cancellation where the
// underlying medium allows it.
//
// A Source is exclusively owned by whichever adapter wraps it and must
// not be pulled from anywhere else afterwards.
type Source[T any] interface {
	Next(ctx context.Context) (T, error)
}

// SourceFunc adapts a plain function to the [Source] interface.
type SourceFunc[T any] func(ctx context.Context) (T, error)

func (f SourceFunc[T]) Next(ctx context.Context) (T, error) {
	return f(ctx)
}

// FromSlice returns a [Source] that yields the slice elements in order
// and then reports [io.EOF].
func FromSlice[T any](items []T) Source[T] {
	var idx int
	return SourceFunc[T](func(context.Context) (T, error) {
		if idx >= len(items) {
			var zero T
			return zero, io.EOF
		}
		v := items[idx]
		idx++
		return v, nil
	})
}

// FromChan returns a [Source] that receives from ch. The sequence is
// exhausted when ch is closed. Receives unblock early when ctx is
// cancelled.
//
// For a producer that is already a channel, prefer [NewChan]: it
// provides the same bounded-wait operations without the extra worker
// goroutine an [Iterator] spawns.
func FromChan[T any](ch <-chan T) Source[T] {
	return SourceFunc[T](func(ctx context.Context) (T, error) {
		v, ok, err := chanx.Recv(ctx, ch)
		if err != nil {
			var zero T
			return zero, err
		}
		if !ok {
			var zero T
			return zero, io.EOF
		}
		return v, nil
	})
}

// FromScanner returns a [Source] that yields sc's tokens (lines, with
// a default scanner). A scan failure is reported once as a per-item
// error, after which the source is exhausted.
//
// Scanner reads cannot be interrupted, so this source ignores ctx
// while a read is in flight.
func FromScanner(sc *bufio.Scanner) Source[string] {
	var failed bool
	return SourceFunc[string](func(context.Context) (string, error) {
		if failed {
			return "", io.EOF
		}
		if sc.Scan() {
			return sc.Text(), nil
		}
		if err := sc.Err(); err != nil {
			failed = true
			return "", err
		}
		return "", io.EOF
	})
}
