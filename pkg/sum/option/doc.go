// Package option contains the type-changing combinators of sum.Option. They
// are plain functions because Go methods cannot introduce type parameters.
//
// Key operations:
// - Map/Then: transform a present value, with or without a nested Option
// - Flatten: remove one level of nesting
// - Collect/Values: turn a slice of options into one option or the present values
// - Zip: combine two options into an option of a pair
// - OkOr: convert to sum.Result with a fallback error
package option
