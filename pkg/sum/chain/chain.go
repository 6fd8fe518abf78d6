package chain

import (
	"context"

	"github.com/ib-77/sumwire/pkg/codec"
	"github.com/ib-77/sumwire/pkg/sum"
	"github.com/ib-77/sumwire/pkg/sum/solo"
)

// Chain is one step of a railway: the outcome so far and the context every
// later step runs with. A Chain is never modified; each step returns a new one.
type Chain[T any] struct {
	ctx    context.Context
	result sum.Result[T, error]
}

func Start[T any](ctx context.Context, result sum.Result[T, error]) *Chain[T] {
	return &Chain[T]{ctx: ctx, result: result}
}

func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, solo.Succeed(value))
}

// Decode starts from a wire record. A decoding error puts the chain on the
// failure track.
func Decode[T any](ctx context.Context, e *codec.Engine, data []byte) *Chain[T] {
	v, err := codec.Decode[T](e, data)
	if err != nil {
		return Start(ctx, solo.Fail[T](err))
	}
	return FromValue(ctx, v)
}

func (c *Chain[T]) Result() sum.Result[T, error] {
	return c.result
}

// Then runs onSuccess on a success value. Failures skip it unchanged.
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) sum.Result[U, error]) *Chain[U] {
	return Start(c.ctx, solo.Switch(c.ctx, c.result, onSuccess))
}

// ThenTry is Then for functions in the (value, error) form.
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Start(c.ctx, solo.Try(c.ctx, c.result, tryOnSuccess))
}

func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return Start(c.ctx, solo.Map(c.ctx, c.result, onSuccess))
}

// Ensure calls onSuccess for a success value and passes the result on as is.
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	c.result.Match(func(v T) { onSuccess(c.ctx, v) }, func(error) {})
	return Start(c.ctx, c.result)
}

// Finally leaves the railway. Failures caused by a cancelled or expired
// context go to onCancel, all others to onFailure.
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U, onCancel func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure, onCancel)
}
