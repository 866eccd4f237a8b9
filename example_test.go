package peekable_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/baxromumarov/peekable"
)

func ExampleIterator() {
	it := peekable.New(peekable.FromSlice([]int{1, 2, 3}))
	defer it.Close()

	ctx := context.Background()

	// Peek inspects without consuming; the following Next still
	// returns the same item.
	v, _ := it.Peek(ctx)
	fmt.Println("peeked:", v)

	for {
		v, err := it.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		fmt.Println("next:", v)
	}
	// Output:
	// peeked: 1
	// next: 1
	// next: 2
	// next: 3
}

func ExampleIterator_NextTimeout() {
	ch := make(chan string) // nothing will ever arrive
	it := peekable.New(peekable.FromChan(ch))
	defer it.Close()

	_, err := it.NextTimeout(10 * time.Millisecond)
	fmt.Println(errors.Is(err, peekable.ErrTimeout))
	// Output: true
}

func ExampleChanIterator() {
	ch := make(chan string, 2)
	ch <- "a"
	ch <- "b"
	close(ch)

	it := peekable.NewChan(ch)
	ctx := context.Background()

	v, _ := it.Peek(ctx)
	fmt.Println("peeked:", v)

	v, _ = it.Next(ctx)
	fmt.Println("next:", v)
	v, _ = it.Next(ctx)
	fmt.Println("next:", v)

	_, err := it.Next(ctx)
	fmt.Println(err)
	// Output:
	// peeked: a
	// next: a
	// next: b
	// EOF
}
