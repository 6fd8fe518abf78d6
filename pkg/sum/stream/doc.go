// Package stream runs sum wire records through a pool of workers over
// channels. All workers share one codec.Engine and therefore one converter
// cache.
//
// Key operations:
// - Decode/Encode: turn a channel of records into a channel of sum.Result values
// - Run: drive any per-item step with a fixed number of workers
// - Lines: split newline-delimited JSON into records
// - ToChan/Collect: move slices in and out of channels
// - WithWorkerOptions/GetWorkerMaxCount: carry the worker count in a context
//
// Results arrive in completion order. With more than one worker that is not
// the input order.
package stream
