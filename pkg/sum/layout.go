package sum

import "reflect"

// Wire names shared by every instantiation.
const (
	OptionDiscriminator = "optionType"
	ResultDiscriminator = "resultType"
	PayloadField        = "value"

	TokenPresent = "present"
	TokenAbsent  = "absent"
	TokenSuccess = "success"
	TokenFailure = "failure"
)

// Case describes one variant on the wire.
type Case struct {
	// Token is the discriminator value of the variant.
	Token string
	// PayloadType is the type carried under the payload field, or nil for a
	// variant without payload.
	PayloadType reflect.Type
}

// Layout describes the wire shape of one sum type instantiation. Cases are
// ordered the same way as the handlers of Match.
type Layout struct {
	Discriminator string
	Payload       string
	Cases         [2]Case
}

// shape is implemented by every instantiation of Option and Result. The
// methods give the converter access to the variant and its payload without
// knowing the type arguments statically.
type shape interface {
	// sumType returns the Option or Result instantiation itself. A struct
	// that embeds one gets the promoted methods but a different type.
	sumType() reflect.Type
	sumLayout() Layout
	// sumSplit returns the active case index and an addressable copy of the
	// payload, or an invalid value for a payload-less case.
	sumSplit() (int, reflect.Value)
	// sumJoin builds the value of the given case from a payload of the case's
	// payload type.
	sumJoin(index int, payload reflect.Value) reflect.Value
}

type optionShape interface {
	shape
	isOption()
}

type resultShape interface {
	shape
	isResult()
}

var (
	shapeType       = reflect.TypeFor[shape]()
	optionShapeType = reflect.TypeFor[optionShape]()
	resultShapeType = reflect.TypeFor[resultShape]()
)

// Describe returns the wire layout of t when t is an instantiation of Option
// or Result. Pointer types are not sum types themselves.
func Describe(t reflect.Type) (Layout, bool) {
	if !isShape(t, shapeType) {
		return Layout{}, false
	}
	return reflect.Zero(t).Interface().(shape).sumLayout(), true
}

func isShape(t, iface reflect.Type) bool {
	if t == nil || t.Kind() != reflect.Struct || !t.Implements(iface) {
		return false
	}
	return reflect.Zero(t).Interface().(shape).sumType() == t
}

func (Option[T]) isOption() {}

func (Option[T]) sumType() reflect.Type {
	return reflect.TypeFor[Option[T]]()
}

func (Option[T]) sumLayout() Layout {
	return Layout{
		Discriminator: OptionDiscriminator,
		Payload:       PayloadField,
		Cases: [2]Case{
			{Token: TokenPresent, PayloadType: reflect.TypeFor[T]()},
			{Token: TokenAbsent},
		},
	}
}

func (o Option[T]) sumSplit() (int, reflect.Value) {
	if o.present {
		return 0, reflect.ValueOf(&o.value).Elem()
	}
	return 1, reflect.Value{}
}

func (Option[T]) sumJoin(index int, payload reflect.Value) reflect.Value {
	if index == 0 {
		v, _ := payload.Interface().(T)
		return reflect.ValueOf(Present(v))
	}
	return reflect.ValueOf(Absent[T]())
}

func (Result[V, E]) isResult() {}

func (Result[V, E]) sumType() reflect.Type {
	return reflect.TypeFor[Result[V, E]]()
}

func (Result[V, E]) sumLayout() Layout {
	return Layout{
		Discriminator: ResultDiscriminator,
		Payload:       PayloadField,
		Cases: [2]Case{
			{Token: TokenSuccess, PayloadType: reflect.TypeFor[V]()},
			{Token: TokenFailure, PayloadType: reflect.TypeFor[E]()},
		},
	}
}

func (r Result[V, E]) sumSplit() (int, reflect.Value) {
	if r.ok {
		return 0, reflect.ValueOf(&r.value).Elem()
	}
	return 1, reflect.ValueOf(&r.err).Elem()
}

func (Result[V, E]) sumJoin(index int, payload reflect.Value) reflect.Value {
	if index == 0 {
		v, _ := payload.Interface().(V)
		return reflect.ValueOf(Success[V, E](v))
	}
	e, _ := payload.Interface().(E)
	return reflect.ValueOf(Failure[V](e))
}
