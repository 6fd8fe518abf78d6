package option

import "github.com/ib-77/sumwire/pkg/sum"

// Pair holds the values joined by Zip.
type Pair[A, B any] struct {
	First  A `json:"first"`
	Second B `json:"second"`
}

func Map[T, R any](o sum.Option[T], f func(T) R) sum.Option[R] {
	return sum.MatchOption(o,
		func(v T) sum.Option[R] { return sum.Present(f(v)) },
		sum.Absent[R])
}

func Then[T, R any](o sum.Option[T], f func(T) sum.Option[R]) sum.Option[R] {
	return sum.MatchOption(o, f, sum.Absent[R])
}

func Flatten[T any](o sum.Option[sum.Option[T]]) sum.Option[T] {
	return Then(o, func(inner sum.Option[T]) sum.Option[T] { return inner })
}

// Collect returns all values when every option is present and Absent
// otherwise. An empty slice gives Present of an empty slice.
func Collect[T any](in []sum.Option[T]) sum.Option[[]T] {
	out := make([]T, 0, len(in))
	for _, o := range in {
		v, ok := o.Get()
		if !ok {
			return sum.Absent[[]T]()
		}
		out = append(out, v)
	}
	return sum.Present(out)
}

// Values drops the absent options and keeps the order of the rest.
func Values[T any](in []sum.Option[T]) []T {
	out := make([]T, 0, len(in))
	for _, o := range in {
		o.Match(func(v T) { out = append(out, v) }, func() {})
	}
	return out
}

func Zip[A, B any](a sum.Option[A], b sum.Option[B]) sum.Option[Pair[A, B]] {
	return Then(a, func(first A) sum.Option[Pair[A, B]] {
		return Map(b, func(second B) Pair[A, B] {
			return Pair[A, B]{First: first, Second: second}
		})
	})
}

// OkOr turns a present value into a success and Absent into a failure
// carrying err.
func OkOr[T, E any](o sum.Option[T], err E) sum.Result[T, E] {
	return sum.MatchOption(o,
		sum.Success[T, E],
		func() sum.Result[T, E] { return sum.Failure[T](err) })
}
