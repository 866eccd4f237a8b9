package peekable

import (
	"context"
	"io"
	"time"

	"github.com/baxromumarov/peekable/chanx"
)

// ChanIterator adapts a receive channel into a peekable, bounded-wait
// sequence without spawning any goroutine.
//
// Where [Iterator] needs a worker to make a blocking pull
// interruptible, a channel already is one: a receive abandoned at a
// deadline consumes nothing, so the value stays in the channel for the
// next call. The channel is, in effect, the retained in-progress
// request for the next item, and that retention is what guarantees no
// item is lost or duplicated across timeouts.
//
// The sequence is exhausted once ch is closed and drained ([io.EOF],
// sticky). A ChanIterator is single-consumer; its methods must not be
// called concurrently. Other consumers receiving from the same channel
// directly would bypass the peek slot and must not coexist with one.
type ChanIterator[T any] struct {
	ch        <-chan T
	peeked    *T
	exhausted bool
}

// NewChan wraps ch in a [ChanIterator].
func NewChan[T any](ch <-chan T) *ChanIterator[T] {
	return &ChanIterator[T]{ch: ch}
}

// Next returns the next value, waiting as long as it takes. A
// previously peeked value is returned first. Next returns [io.EOF]
// once the channel is closed and drained, or ctx's error if ctx ends
// first; in the latter case nothing has been consumed.
func (it *ChanIterator[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if p := it.peeked; p != nil {
		it.peeked = nil
		return *p, nil
	}
	if it.exhausted {
		return zero, io.EOF
	}

	v, ok, err := chanx.Recv(ctx, it.ch)
	if err != nil {
		return zero, err
	}
	if !ok {
		it.exhausted = true
		return zero, io.EOF
	}
	return v, nil
}

// NextTimeout is [ChanIterator.Next] bounded by d. It returns
// [ErrTimeout] when no value arrives in time; nothing is consumed, so
// the next call returns whatever this one was waiting for. A d <= 0 is
// an immediate poll.
func (it *ChanIterator[T]) NextTimeout(d time.Duration) (T, error) {
	var zero T
	if p := it.peeked; p != nil {
		it.peeked = nil
		return *p, nil
	}
	if it.exhausted {
		return zero, io.EOF
	}

	v, ok, timedOut := chanx.RecvTimeout(it.ch, d)
	if timedOut {
		return zero, ErrTimeout
	}
	if !ok {
		it.exhausted = true
		return zero, io.EOF
	}
	return v, nil
}

// Peek returns the next value without consuming it. Repeated Peek
// calls return the identical value from a single channel receive, and
// the [ChanIterator.Next] that follows returns it without receiving
// again.
func (it *ChanIterator[T]) Peek(ctx context.Context) (T, error) {
	var zero T
	if it.peeked == nil {
		if it.exhausted {
			return zero, io.EOF
		}
		v, ok, err := chanx.Recv(ctx, it.ch)
		if err != nil {
			return zero, err
		}
		if !ok {
			it.exhausted = true
			return zero, io.EOF
		}
		it.peeked = &v
	}
	return *it.peeked, nil
}

// PeekTimeout is [ChanIterator.Peek] bounded by d. It returns
// [ErrTimeout] when no value arrives in time. A d <= 0 is an immediate
// poll.
func (it *ChanIterator[T]) PeekTimeout(d time.Duration) (T, error) {
	var zero T
	if it.peeked == nil {
		if it.exhausted {
			return zero, io.EOF
		}
		v, ok, timedOut := chanx.RecvTimeout(it.ch, d)
		if timedOut {
			return zero, ErrTimeout
		}
		if !ok {
			it.exhausted = true
			return zero, io.EOF
		}
		it.peeked = &v
	}
	return *it.peeked, nil
}
