package schema

import (
	"reflect"

	"github.com/ib-77/sumwire/pkg/sum"
	"github.com/invopop/jsonschema"
)

var errorType = reflect.TypeFor[error]()

// Mapper returns the schema of t when t is a sum type instantiation or the
// error interface, and nil for every other type so the reflector falls back
// to its own rules.
func Mapper(t reflect.Type) *jsonschema.Schema {
	if t == errorType {
		return &jsonschema.Schema{Type: "string"}
	}
	layout, ok := sum.Describe(t)
	if !ok {
		return nil
	}

	variants := make([]*jsonschema.Schema, 0, len(layout.Cases))
	for _, kase := range layout.Cases {
		props := jsonschema.NewProperties()
		props.Set(layout.Discriminator, &jsonschema.Schema{Type: "string", Const: kase.Token})
		required := []string{layout.Discriminator}

		if kase.PayloadType != nil {
			props.Set(layout.Payload, payloadSchema(kase.PayloadType))
			required = append(required, layout.Payload)
		}

		variants = append(variants, &jsonschema.Schema{
			Type:       "object",
			Properties: props,
			Required:   required,
		})
	}
	return &jsonschema.Schema{OneOf: variants}
}

// For reflects T with every nested sum type described by Mapper.
func For[T any]() *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		Mapper:         Mapper,
	}
	return r.ReflectFromType(reflect.TypeFor[T]())
}

func payloadSchema(t reflect.Type) *jsonschema.Schema {
	r := &jsonschema.Reflector{
		DoNotReference: true, // inline nested payloads
		Mapper:         Mapper,
	}
	s := r.ReflectFromType(t)
	s.Version = ""
	s.ID = ""
	return s
}
