package solo

import (
	"context"
	"errors"
)

// IsCancellation reports whether err comes from a cancelled or expired
// context.
func IsCancellation(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func splitErrors(err error) []error {
	if err == nil {
		return []error{}
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}
