// Command recordcat assembles multi-line records from line input.
//
// A record starts with a line at column zero; lines beginning with a
// space or tab continue the current record. The end of a record is
// only knowable by the arrival, or non-arrival, of a continuation
// line, so the reader peeks ahead with a deadline instead of blocking:
// when nothing shows up within -flush, the record in hand is emitted.
//
//	tail -f app.log | recordcat -flush 500ms -pretty
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/baxromumarov/peekable"
)

func main() {
	flush := flag.Duration("flush", 500*time.Millisecond,
		"how long to wait for a continuation line before emitting the record")
	pretty := flag.Bool("pretty", false, "human-readable log output")
	flag.Parse()

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *pretty {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	it := peekable.New(peekable.FromScanner(bufio.NewScanner(os.Stdin)))
	defer it.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	n, err := assemble(it, out, *flush, log)
	if err != nil {
		log.Fatal().Err(err).Msg("reading input failed")
	}
	log.Info().Int("records", n).Msg("done")
}

// continued reports whether line extends the record before it.
func continued(line string) bool {
	return strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")
}

// assemble reads lines from it, groups them into records, and writes
// each finished record to out. It returns the number of records
// emitted.
func assemble(it *peekable.Iterator[string], out *bufio.Writer, flush time.Duration, log zerolog.Logger) (int, error) {
	ctx := context.Background()

	var records int
	for {
		line, err := it.Next(ctx)
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return records, err
		}

		rec := []string{line}
		flushed := false
		for !flushed {
			next, err := it.PeekTimeout(flush)
			switch {
			case errors.Is(err, peekable.ErrTimeout):
				log.Debug().Int("lines", len(rec)).Msg("flush on timeout")
				flushed = true
			case errors.Is(err, io.EOF):
				flushed = true
			case err != nil:
				return records, err
			case !continued(next):
				flushed = true
			default:
				if _, err := it.Next(ctx); err != nil {
					return records, err
				}
				rec = append(rec, next)
			}
		}

		records++
		if _, err := out.WriteString(strings.Join(rec, "\n") + "\n"); err != nil {
			return records, err
		}
		if err := out.Flush(); err != nil {
			return records, err
		}
	}
}
