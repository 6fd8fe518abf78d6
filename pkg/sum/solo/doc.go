// Package solo contains single-value, synchronous railway steps over
// sum.Result[T, error]. A failure whose error is a context cancellation or
// deadline is treated as a cancel and routed to the cancel handlers.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T, error]
// - Validate/AndValidate/ValidateAll: apply validation producing failure on invalid input
// - Switch: move from Result[In, error] to Result[Out, error]
// - Map/DoubleMap: transform successful values (with optional error/cancel maps)
// - Try/FailOnError: call a function returning an error and convert it to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Join: run several steps, optionally stopping at the first failure
// - Finally: reduce to a concrete value via success/error/cancel handlers
package solo
