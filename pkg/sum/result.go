package sum

import "fmt"

// Result holds either a success value of type V or a failure value of type
// E. Only the active side can be read. The zero Result is a Failure carrying
// the zero E.
type Result[V, E any] struct {
	value V
	err   E
	ok    bool
}

func Success[V, E any](value V) Result[V, E] {
	return Result[V, E]{value: value, ok: true}
}

func Failure[V, E any](err E) Result[V, E] {
	return Result[V, E]{err: err}
}

func (r Result[V, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[V, E]) IsFailure() bool {
	return !r.ok
}

// Value returns the success value and true, or the zero V and false.
func (r Result[V, E]) Value() (V, bool) {
	if r.ok {
		return r.value, true
	}
	var zero V
	return zero, false
}

// Err returns the failure value and true, or the zero E and false.
func (r Result[V, E]) Err() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

func (r Result[V, E]) UnwrapOr(fallback V) V {
	if r.ok {
		return r.value
	}
	return fallback
}

func (r Result[V, E]) UnwrapOrElse(fallback func(E) V) V {
	if r.ok {
		return r.value
	}
	return fallback(r.err)
}

// Ok converts the success side to an Option.
func (r Result[V, E]) Ok() Option[V] {
	if r.ok {
		return Present(r.value)
	}
	return Absent[V]()
}

// Failed converts the failure side to an Option.
func (r Result[V, E]) Failed() Option[E] {
	if r.ok {
		return Absent[E]()
	}
	return Present(r.err)
}

// Match calls exactly one of the two handlers.
func (r Result[V, E]) Match(onSuccess func(V), onFailure func(E)) {
	if r.ok {
		onSuccess(r.value)
		return
	}
	onFailure(r.err)
}

func (r Result[V, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

// MatchResult reduces r to a single value through exactly one handler.
func MatchResult[V, E, R any](r Result[V, E], onSuccess func(V) R, onFailure func(E) R) R {
	if r.ok {
		return onSuccess(r.value)
	}
	return onFailure(r.err)
}
