package sum

import "fmt"

// Option holds either a present value of type T or nothing. The zero Option
// is Absent.
type Option[T any] struct {
	value   T
	present bool
}

func Present[T any](value T) Option[T] {
	return Option[T]{value: value, present: true}
}

func Absent[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr returns Absent for a nil pointer and Present(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return Absent[T]()
	}
	return Present(*p)
}

// FromOk mirrors the comma-ok idiom of map lookups and type assertions.
func FromOk[T any](value T, ok bool) Option[T] {
	if !ok {
		return Absent[T]()
	}
	return Present(value)
}

func (o Option[T]) IsPresent() bool {
	return o.present
}

func (o Option[T]) IsAbsent() bool {
	return !o.present
}

// Get returns the value and true when present, or the zero T and false.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Option[T]) UnwrapOr(fallback T) T {
	if o.present {
		return o.value
	}
	return fallback
}

func (o Option[T]) UnwrapOrElse(fallback func() T) T {
	if o.present {
		return o.value
	}
	return fallback()
}

// ToPtr returns a pointer to a copy of the value, or nil when absent.
func (o Option[T]) ToPtr() *T {
	if !o.present {
		return nil
	}
	v := o.value
	return &v
}

// OrElse returns o when present and other otherwise.
func (o Option[T]) OrElse(other Option[T]) Option[T] {
	if o.present {
		return o
	}
	return other
}

// Filter keeps the value only when keep reports true.
func (o Option[T]) Filter(keep func(T) bool) Option[T] {
	if o.present && keep(o.value) {
		return o
	}
	return Absent[T]()
}

// Match calls exactly one of the two handlers.
func (o Option[T]) Match(onPresent func(T), onAbsent func()) {
	if o.present {
		onPresent(o.value)
		return
	}
	onAbsent()
}

func (o Option[T]) String() string {
	if o.present {
		return fmt.Sprintf("Present(%v)", o.value)
	}
	return "Absent"
}

// MatchOption reduces o to a single value through exactly one handler.
func MatchOption[T, R any](o Option[T], onPresent func(T) R, onAbsent func() R) R {
	if o.present {
		return onPresent(o.value)
	}
	return onAbsent()
}
