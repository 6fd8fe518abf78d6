// Package schema describes the sum wire format as JSON Schema using
// github.com/invopop/jsonschema.
//
// Key operations:
// - Mapper: a jsonschema.Reflector mapper that turns every Option or Result
//   instantiation into a oneOf of its two wire records
// - For: reflect a whole type with the mapper installed
package schema
