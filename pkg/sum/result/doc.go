// Package result contains the type-changing combinators of sum.Result.
//
// Key operations:
// - Map/MapError: transform the success or the failure side
// - Then/OrElse: continue with a function returning another Result
// - Flatten: remove one level of nesting
// - Collect/Partition: fold a slice of results
// - FromTuple/Try: lift the (value, error) convention into Result[V, error]
package result
