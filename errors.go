package peekable

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned by NextTimeout and PeekTimeout when the
	// deadline elapses before an item is available. It is recoverable:
	// the adapter stays fully usable and no item is lost, so the very
	// next call picks up exactly where this one gave up.
	ErrTimeout = errors.New("peekable: timed out waiting for next item")

	// ErrClosed is returned by every operation after [Iterator.Close].
	ErrClosed = errors.New("peekable: iterator closed")
)

// SourceError wraps an error a [Source] reported for a single item.
// It travels through the adapter like a regular item: delivered exactly
// once, in sequence order, peekable, and it does not end the sequence.
// A later call may still return items.
type SourceError struct {
	Err error
}

func (e *SourceError) Error() string {
	return fmt.Sprintf("peekable: source error: %v", e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// IsSourceError reports whether err (or any error in its chain) is a
// [*SourceError], i.e. a per-item source failure rather than a timeout,
// exhaustion, or closed adapter.
func IsSourceError(err error) bool {
	if err == nil {
		return false
	}
	var se *SourceError
	return errors.As(err, &se)
}

// Cause unwraps the first [*SourceError] in err's chain and returns the
// source's underlying error. If err is not a SourceError, it is
// returned as-is. Returns nil if err is nil.
func Cause(err error) error {
	if err == nil {
		return nil
	}

	var se *SourceError
	if errors.As(err, &se) {
		return se.Err
	}

	return err
}
