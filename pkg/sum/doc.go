// Package sum provides two closed, two-variant containers and their JSON
// wire format:
//
// - Option[T]: Present(value) or Absent
// - Result[V, E]: Success(value) or Failure(error)
//
// Both are immutable values. Every operation, the JSON converter included,
// is built on the exhaustive two-way Match.
//
// On the wire each value is an object with a string discriminator and, for
// the variants that carry one, a "value" payload:
//
//	{"optionType":"present","value":42}
//	{"optionType":"absent"}
//	{"resultType":"success","value":"ok"}
//	{"resultType":"failure","value":404}
//
// OptionFactory and ResultFactory plug the format into a codec.Engine. They
// discover the type arguments of any instantiation at runtime and build one
// converter per instantiation. Payloads are encoded by the engine itself with
// the calling converter switched off, so nested sum types such as
// Option[Option[int]] are served by their own converters.
//
// Option and Result also implement json.Marshaler and json.Unmarshaler
// through DefaultEngine, so they can be used as fields of ordinary structs.
package sum
