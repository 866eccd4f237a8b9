// Package peekable adds bounded waits and one-item look-ahead to a
// sequence producer.
//
// A consumer that assembles larger units out of a stream, such as
// multi-line records out of log lines, eventually has to
// decide "is more data coming soon, or should I finalize what I have?"
// A plain blocking pull cannot answer that question: it either returns
// an item or blocks forever. peekable wraps a producer so the consumer
// can ask it with a deadline:
//
//	it := peekable.New(src)
//	defer it.Close()
//
//	line, err := it.PeekTimeout(500 * time.Millisecond)
//	switch {
//	case errors.Is(err, peekable.ErrTimeout):
//	    // Nothing arrived in time; finalize the pending record.
//	case errors.Is(err, io.EOF):
//	    // Source exhausted; finalize and stop.
//	case err == nil:
//	    // line is next but still unconsumed; Next() will return it.
//	}
//
// # Adapters
//
// Two adapters share the same four operations (Next, NextTimeout,
// Peek, PeekTimeout):
//
//   - [Iterator] wraps a pull-based [Source] whose Next may block
//     arbitrarily. A single worker goroutine pulls the source and
//     hands each item over an unbuffered channel, so the worker is
//     never more than one item ahead and a consumer-side timeout
//     leaves the item in flight for the next call.
//   - [ChanIterator] wraps a receive channel directly, with no extra
//     goroutine. Abandoning a channel receive never consumes a value,
//     which gives the same no-loss guarantee for free.
//
// # Guarantees
//
// Items are delivered in producer order, exactly once, across any
// number of timeouts and repeated peeks. Repeated Peek calls return
// the same item from a single underlying pull; the Next that follows
// consumes it without pulling again. Exhaustion ([io.EOF]) is sticky.
// A timeout ([ErrTimeout]) is always recoverable and never cancels a
// pull already dispatched to the source.
//
// Per-item failures from a fallible source travel through the adapter
// like items: delivered once, in order, peekable, wrapped in
// [*SourceError], and the sequence continues past them.
//
// Both adapters are single-consumer. Calls on the same adapter must
// not be made concurrently; callers that share one across goroutines
// must serialize access themselves.
package peekable
