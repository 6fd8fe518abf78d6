package result

import "github.com/ib-77/sumwire/pkg/sum"

func Map[V, R, E any](r sum.Result[V, E], f func(V) R) sum.Result[R, E] {
	return sum.MatchResult(r,
		func(v V) sum.Result[R, E] { return sum.Success[R, E](f(v)) },
		sum.Failure[R, E])
}

func MapError[V, E, F any](r sum.Result[V, E], f func(E) F) sum.Result[V, F] {
	return sum.MatchResult(r,
		sum.Success[V, F],
		func(e E) sum.Result[V, F] { return sum.Failure[V](f(e)) })
}

func Then[V, R, E any](r sum.Result[V, E], f func(V) sum.Result[R, E]) sum.Result[R, E] {
	return sum.MatchResult(r, f, sum.Failure[R, E])
}

// OrElse gives a failure a second chance. Successes pass through.
func OrElse[V, E, F any](r sum.Result[V, E], f func(E) sum.Result[V, F]) sum.Result[V, F] {
	return sum.MatchResult(r, sum.Success[V, F], f)
}

func Flatten[V, E any](r sum.Result[sum.Result[V, E], E]) sum.Result[V, E] {
	return Then(r, func(inner sum.Result[V, E]) sum.Result[V, E] { return inner })
}

// Collect returns all success values in order, or the first failure.
func Collect[V, E any](in []sum.Result[V, E]) sum.Result[[]V, E] {
	out := make([]V, 0, len(in))
	for _, r := range in {
		if e, failed := r.Err(); failed {
			return sum.Failure[[]V](e)
		}
		v, _ := r.Value()
		out = append(out, v)
	}
	return sum.Success[[]V, E](out)
}

// Partition splits results into success values and failures, keeping order.
func Partition[V, E any](in []sum.Result[V, E]) ([]V, []E) {
	var values []V
	var errs []E
	for _, r := range in {
		r.Match(
			func(v V) { values = append(values, v) },
			func(e E) { errs = append(errs, e) })
	}
	return values, errs
}

// FromTuple converts the (value, error) convention. A nil error gives a
// success.
func FromTuple[V any](v V, err error) sum.Result[V, error] {
	if err != nil {
		return sum.Failure[V](err)
	}
	return sum.Success[V, error](v)
}

func Try[V any](f func() (V, error)) sum.Result[V, error] {
	return FromTuple(f())
}
