package solo

import (
	"context"
	"errors"

	"github.com/ib-77/sumwire/pkg/sum"
)

func Succeed[T any](input T) sum.Result[T, error] {
	return sum.Success[T, error](input)
}

func Fail[T any](err error) sum.Result[T, error] {
	return sum.Failure[T](err)
}

// Cancel builds the failure used for an interrupted step. A nil err becomes
// context.Canceled.
func Cancel[T any](err error) sum.Result[T, error] {
	if err == nil {
		err = context.Canceled
	}
	return sum.Failure[T](err)
}

func failure[T any](input sum.Result[T, error]) error {
	err, _ := input.Err()
	return err
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) sum.Result[T, error] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input sum.Result[T, error],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) sum.Result[T, error] {

	return Switch(ctx, input, func(ctx context.Context, in T) sum.Result[T, error] {
		if isValid, errMsg := validate(ctx, in); !isValid {
			return Fail[T](errors.New(errMsg))
		}
		return Succeed(in)
	})
}

// ValidateAll runs every validator and joins the failures with errors.Join.
func ValidateAll[T any](
	ctx context.Context,
	input sum.Result[T, error],
	breakOnError bool, // exit on first error
	validators ...func(ctx context.Context, in sum.Result[T, error]) sum.Result[T, error]) sum.Result[T, error] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current sum.Result[T, error]) sum.Result[T, error] {
			if current.IsFailure() {
				errs := append(splitErrors(err), failure(current))
				err = errors.Join(errs...)
			}
			if err == nil {
				return current
			}
			return Fail[T](err)
		},
		validators...,
	)
}

func Switch[In any, Out any](ctx context.Context,
	input sum.Result[In, error],
	onSuccess func(ctx context.Context, r In) sum.Result[Out, error]) sum.Result[Out, error] {

	return sum.MatchResult(input,
		func(v In) sum.Result[Out, error] { return onSuccess(ctx, v) },
		Fail[Out])
}

func Map[In any, Out any](ctx context.Context,
	input sum.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out) sum.Result[Out, error] {

	return Switch(ctx, input, func(ctx context.Context, v In) sum.Result[Out, error] {
		return Succeed(onSuccess(ctx, v))
	})
}

func Tee[T any](ctx context.Context,
	input sum.Result[T, error],
	onSuccess func(ctx context.Context, r sum.Result[T, error])) sum.Result[T, error] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}
	return input
}

func TeeIf[T any](ctx context.Context,
	input sum.Result[T, error],
	condition func(ctx context.Context, r sum.Result[T, error]) bool,
	onSuccessAndCondition func(ctx context.Context, r sum.Result[T, error])) sum.Result[T, error] {

	if input.IsSuccess() && condition(ctx, input) {
		onSuccessAndCondition(ctx, input)
	}
	return input
}

func DoubleTee[T any](ctx context.Context, input sum.Result[T, error],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error),
	onCancel func(ctx context.Context, err error)) sum.Result[T, error] {

	input.Match(
		func(v T) { onSuccess(ctx, v) },
		func(err error) {
			if IsCancellation(err) {
				onCancel(ctx, err)
				return
			}
			onError(ctx, err)
		})
	return input
}

// DoubleMap maps both sides to Out but keeps the failure on the railway: the
// error and cancel handlers run for their side effects and the original
// error is returned.
func DoubleMap[In any, Out any](ctx context.Context, input sum.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) sum.Result[Out, error] {

	return sum.MatchResult(input,
		func(v In) sum.Result[Out, error] { return Succeed(onSuccess(ctx, v)) },
		func(err error) sum.Result[Out, error] {
			if IsCancellation(err) {
				onCancel(ctx, err)
			} else {
				onError(ctx, err)
			}
			return Fail[Out](err)
		})
}

func Try[In any, Out any](ctx context.Context, input sum.Result[In, error],
	onTryExecute func(ctx context.Context, r In) (Out, error)) sum.Result[Out, error] {

	return Switch(ctx, input, func(ctx context.Context, v In) sum.Result[Out, error] {
		out, err := onTryExecute(ctx, v)
		if err != nil {
			return Fail[Out](err)
		}
		return Succeed(out)
	})
}

func FailOnError[T any](ctx context.Context, input sum.Result[T, error],
	maybeErr func(ctx context.Context, in T) error) sum.Result[T, error] {

	return Switch(ctx, input, func(ctx context.Context, v T) sum.Result[T, error] {
		if err := maybeErr(ctx, v); err != nil {
			return Fail[T](err)
		}
		return input
	})
}

func Finally[In, Out any](ctx context.Context, input sum.Result[In, error],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out,
	onCancel func(ctx context.Context, err error) Out) Out {

	return sum.MatchResult(input,
		func(v In) Out { return onSuccess(ctx, v) },
		func(err error) Out {
			if IsCancellation(err) {
				return onCancel(ctx, err)
			}
			return onError(ctx, err)
		})
}

// Join feeds input through steps in order, passing each step's output
// through concat. A cancelled ctx stops before the next step.
func Join[T any](ctx context.Context,
	input sum.Result[T, error],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current sum.Result[T, error]) sum.Result[T, error],
	steps ...func(ctx context.Context, in sum.Result[T, error]) sum.Result[T, error]) sum.Result[T, error] {

	if len(steps) == 0 || concat == nil || ctx.Err() != nil {
		return input
	}

	final := concat(ctx, steps[0](ctx, input))
	if ctx.Err() != nil {
		return final
	}

	if final.IsSuccess() || !breakOnError {
		for _, step := range steps[1:] {
			if ctx.Err() != nil {
				return final
			}

			next := concat(ctx, step(ctx, final))
			if next.IsFailure() && breakOnError {
				return next
			}
			final = next
		}
	}
	return final
}
