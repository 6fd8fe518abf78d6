package stream

import (
	"context"
	"sync"

	"github.com/ib-77/sumwire/pkg/codec"
	"github.com/ib-77/sumwire/pkg/sum"
	"go.uber.org/zap"
)

// Run starts lines workers that apply step to every item of inputCh. The
// returned channel is closed once all workers have stopped.
func Run[In, Out any](ctx context.Context, inputCh <-chan In,
	step func(ctx context.Context, input In) Out,
	handlers CancellationHandlers[In, Out],
	lines int) <-chan Out {

	if lines < 1 {
		lines = 1
	}
	out := make(chan Out)
	wg := &sync.WaitGroup{}

	for range lines {
		wg.Add(1)
		go Locomotive(ctx, inputCh, out, step, handlers, wg)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}

// Decode decodes every record of inputCh into T. Each record yields exactly
// one result unless ctx is cancelled first.
func Decode[T any](ctx context.Context, e *codec.Engine, inputCh <-chan []byte,
	lines int) <-chan sum.Result[T, error] {

	return Run(ctx, inputCh,
		func(_ context.Context, data []byte) sum.Result[T, error] {
			v, err := codec.Decode[T](e, data)
			if err != nil {
				return sum.Failure[T](err)
			}
			return sum.Success[T, error](v)
		},
		dropHandlers[[]byte, sum.Result[T, error]](e.Logger()),
		lines)
}

// Encode encodes every value of inputCh with its static type T.
func Encode[T any](ctx context.Context, e *codec.Engine, inputCh <-chan T,
	lines int) <-chan sum.Result[[]byte, error] {

	return Run(ctx, inputCh,
		func(_ context.Context, v T) sum.Result[[]byte, error] {
			data, err := codec.Encode(e, v)
			if err != nil {
				return sum.Failure[[]byte](err)
			}
			return sum.Success[[]byte, error](data)
		},
		dropHandlers[T, sum.Result[[]byte, error]](e.Logger()),
		lines)
}

func dropHandlers[In, Out any](log *zap.Logger) CancellationHandlers[In, Out] {
	return CancellationHandlers[In, Out]{
		OnCancelUnprocessed: func(ctx context.Context, _ In) {
			log.Debug("dropping unprocessed record", zap.Error(ctx.Err()))
		},
		OnCancelProcessed: func(ctx context.Context, _ In, _ Out) {
			log.Debug("dropping processed record", zap.Error(ctx.Err()))
		},
	}
}
