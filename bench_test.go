package peekable_test

import (
	"context"
	"testing"
	"time"

	"github.com/baxromumarov/peekable"
)

// BenchmarkIteratorNext measures the per-item cost of the worker
// handoff for an always-ready source.
func BenchmarkIteratorNext(b *testing.B) {
	src := peekable.SourceFunc[int](func(context.Context) (int, error) {
		return 1, nil
	})
	it := peekable.New(src)
	defer it.Close()

	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := it.Next(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIteratorPeekNext measures the peek-then-consume pair, which
// exercises the slot on every item.
func BenchmarkIteratorPeekNext(b *testing.B) {
	src := peekable.SourceFunc[int](func(context.Context) (int, error) {
		return 1, nil
	})
	it := peekable.New(src)
	defer it.Close()

	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := it.Peek(ctx); err != nil {
			b.Fatal(err)
		}
		if _, err := it.Next(ctx); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkIteratorNextTimeout measures the bounded wait on the happy
// path, where the deadline timer is armed but never fires.
func BenchmarkIteratorNextTimeout(b *testing.B) {
	src := peekable.SourceFunc[int](func(context.Context) (int, error) {
		return 1, nil
	})
	it := peekable.New(src)
	defer it.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := it.NextTimeout(time.Minute); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkChanIteratorNext measures the goroutine-free adapter.
func BenchmarkChanIteratorNext(b *testing.B) {
	ch := make(chan int, 1024)
	stop := make(chan struct{})
	go func() {
		for {
			select {
			case ch <- 1:
			case <-stop:
				return
			}
		}
	}()
	defer close(stop)

	it := peekable.NewChan(ch)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := it.Next(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
