package sum

import (
	"fmt"
	"reflect"
)

// MissingDiscriminatorError reports a wire record without its discriminator
// field.
type MissingDiscriminatorError struct {
	Type  reflect.Type
	Field string
}

func (e *MissingDiscriminatorError) Error() string {
	return fmt.Sprintf("sum: decoding %v: missing discriminator field %q", e.Type, e.Field)
}

// UnknownDiscriminatorError reports a discriminator that names no variant.
// Token holds the raw JSON text of the field, so a non-string discriminator
// is reported as written.
type UnknownDiscriminatorError struct {
	Type  reflect.Type
	Field string
	Token string
}

func (e *UnknownDiscriminatorError) Error() string {
	return fmt.Sprintf("sum: decoding %v: unrecognized %s %s", e.Type, e.Field, e.Token)
}

// MissingPayloadError reports a variant that requires a payload field which
// the record does not have.
type MissingPayloadError struct {
	Type  reflect.Type
	Field string
	Token string
}

func (e *MissingPayloadError) Error() string {
	return fmt.Sprintf("sum: decoding %v: variant %q requires field %q", e.Type, e.Token, e.Field)
}

// NullPayloadError reports a JSON null payload for a payload type that has
// no nil value.
type NullPayloadError struct {
	Type        reflect.Type
	Field       string
	Token       string
	PayloadType reflect.Type
}

func (e *NullPayloadError) Error() string {
	return fmt.Sprintf("sum: decoding %v: variant %q has null %q but %v is not nullable",
		e.Type, e.Token, e.Field, e.PayloadType)
}

// UnexpectedPayloadError reports a payload field next to a payload-less
// variant. It is only raised when the engine runs with StrictAbsent.
type UnexpectedPayloadError struct {
	Type  reflect.Type
	Field string
	Token string
}

func (e *UnexpectedPayloadError) Error() string {
	return fmt.Sprintf("sum: decoding %v: variant %q carries no payload but field %q is present",
		e.Type, e.Token, e.Field)
}
