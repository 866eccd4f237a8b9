package peekable

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/baxromumarov/peekable/chanx"
)

// item is the unit handed from the worker to the consumer: a value, or
// a per-item source failure already wrapped in [*SourceError].
type item[T any] struct {
	val T
	err error
}

// Iterator adapts a blocking [Source] into a peekable, bounded-wait
// sequence.
//
// [New] spawns a single worker goroutine that owns the source: it
// pulls one item, hands it over on an unbuffered channel, and repeats.
// Because the handoff channel has no capacity, the worker is never
// more than one item ahead of the consumer, and a consumer that gives
// up at a deadline leaves the pending item parked in the blocked send.
// The next call receives it: no item is lost or duplicated across any
// number of timeouts.
//
// An Iterator is single-consumer. Its methods must not be called
// concurrently.
type Iterator[T any] struct {
	ch     chan item[T]
	cancel context.CancelFunc
	done   chan struct{}

	peeked    *item[T]
	exhausted bool
	closed    bool
}

// New wraps src in an [Iterator] and starts its worker. The worker
// owns src exclusively from this point on; the caller must not pull
// from src again.
func New[T any](src Source[T]) *Iterator[T] {
	ctx, cancel := context.WithCancel(context.Background())
	it := &Iterator[T]{
		ch:     make(chan item[T]),
		cancel: cancel,
		done:   make(chan struct{}),
	}
	go it.pull(ctx, src)
	return it
}

// pull is the worker loop. Closing it.ch is the termination marker the
// consumer side turns into a sticky io.EOF.
func (it *Iterator[T]) pull(ctx context.Context, src Source[T]) {
	defer close(it.done)
	defer close(it.ch)

	for {
		v, err := src.Next(ctx)
		switch {
		case err == nil:
			if chanx.Send(ctx, it.ch, item[T]{val: v}) != nil {
				return
			}
		case errors.Is(err, io.EOF):
			return
		case ctx.Err() != nil:
			// Close cancelled the context mid-pull; whatever the
			// source returned is no longer wanted.
			return
		default:
			// Per-item failure: forward it in sequence order and keep
			// pulling. The sequence only ends on io.EOF.
			if chanx.Send(ctx, it.ch, item[T]{err: &SourceError{Err: err}}) != nil {
				return
			}
		}
	}
}

// Next returns the next item, waiting as long as it takes. A
// previously peeked item is returned first, without touching the
// source. Next returns [io.EOF] once the source is exhausted (sticky),
// a [*SourceError] for a per-item failure, or ctx's error if ctx ends
// before an item arrives. Cancellation never cancels the pull already
// dispatched to the source; its item stays in flight for the next
// call.
func (it *Iterator[T]) Next(ctx context.Context) (T, error) {
	var zero T
	if it.closed {
		return zero, ErrClosed
	}
	if p := it.peeked; p != nil {
		it.peeked = nil
		return p.val, p.err
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
	return v.val, v.err
}

// NextTimeout is [Iterator.Next] bounded by d. It returns [ErrTimeout]
// when no item becomes available in time; the adapter and the
// in-flight item are untouched, so the very next call resumes exactly
// where this one gave up. A d <= 0 is an immediate poll.
func (it *Iterator[T]) NextTimeout(d time.Duration) (T, error) {
	var zero T
	if it.closed {
		return zero, ErrClosed
	}
	if p := it.peeked; p != nil {
		it.peeked = nil
		return p.val, p.err
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
	return v.val, v.err
}

// Peek returns the next item without consuming it. Repeated Peek calls
// return the identical item from a single underlying pull, and the
// [Iterator.Next] that follows returns it without pulling again. A
// per-item failure occupies the peek slot like a value: peeking it
// repeatedly returns the same error, and Next consumes it.
func (it *Iterator[T]) Peek(ctx context.Context) (T, error) {
	var zero T
	if it.closed {
		return zero, ErrClosed
	}
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
	return it.peeked.val, it.peeked.err
}

// PeekTimeout is [Iterator.Peek] bounded by d. It returns [ErrTimeout]
// when no item becomes available in time. A d <= 0 is an immediate
// poll.
func (it *Iterator[T]) PeekTimeout(d time.Duration) (T, error) {
	var zero T
	if it.closed {
		return zero, ErrClosed
	}
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
	return it.peeked.val, it.peeked.err
}

// Close stops the worker and marks the iterator closed; subsequent
// calls return [ErrClosed]. Close is idempotent and never blocks: the
// worker exits as soon as its pending handoff is abandoned or its
// current pull returns. A source that ignores context cancellation
// keeps the worker alive until that pull yields; use [Iterator.Done]
// to observe the actual exit when it matters.
func (it *Iterator[T]) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	it.peeked = nil
	it.cancel()
	return nil
}

// Done returns a channel that is closed when the worker goroutine has
// exited, either because the source was exhausted and drained or
// because [Iterator.Close] stopped it.
func (it *Iterator[T]) Done() <-chan struct{} {
	return it.done
}
