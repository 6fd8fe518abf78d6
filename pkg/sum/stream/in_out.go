package stream

import (
	"bufio"
	"bytes"
	"context"
	"io"
)

// MaxLineSize bounds a single record read by Lines.
const MaxLineSize = 1 << 20

func ToChan[T any](ctx context.Context, values []T) <-chan T {
	in := make(chan T)

	go func() {
		defer close(in)

		for _, v := range values {
			select {
			case in <- v:
			case <-ctx.Done():
				return
			}
		}
	}()

	return in
}

// Collect drains out until it is closed or ctx is done.
func Collect[T any](ctx context.Context, out <-chan T) []T {
	res := make([]T, 0)
	for {
		select {
		case v, ok := <-out:
			if !ok {
				return res
			}
			res = append(res, v)
		case <-ctx.Done():
			return res
		}
	}
}

// Lines emits every non-blank line of r as one record. The returned function
// reports the read error, if any, and must only be called after the channel
// is closed.
func Lines(ctx context.Context, r io.Reader) (<-chan []byte, func() error) {
	in := make(chan []byte)
	var readErr error

	go func() {
		defer close(in)

		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)
		for scanner.Scan() {
			line := bytes.TrimSpace(scanner.Bytes())
			if len(line) == 0 {
				continue
			}
			record := append([]byte(nil), line...)

			select {
			case in <- record:
			case <-ctx.Done():
				readErr = ctx.Err()
				return
			}
		}
		readErr = scanner.Err()
	}()

	return in, func() error { return readErr }
}
