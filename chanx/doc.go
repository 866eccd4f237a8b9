// Package chanx provides context- and deadline-aware channel edges.
//
// A plain channel send or receive cannot be abandoned: combining one
// with cancellation or a deadline takes a careful select every time.
// chanx centralizes the three shapes the peekable adapters are built
// on:
//
//   - [Send]: send that unblocks on context cancellation.
//   - [Recv]: receive that unblocks on context cancellation.
//   - [RecvTimeout]: receive that gives up after a duration, observing
//     an already-available value even at a zero deadline.
//
// Abandoning a receive never consumes a value: whatever was in flight
// stays in the channel for the next receiver. The timeout primitives
// rely on this to guarantee that a deadline loses time, never data.
package chanx
