package stream

import (
	"context"
	"sync"
)

type CancellationHandlers[In, Out any] struct {
	OnCancel            func(ctx context.Context, inputCh <-chan In)
	OnCancelUnprocessed func(ctx context.Context, unprocessed In)
	OnCancelProcessed   func(ctx context.Context, in In, processed Out)
}

// Locomotive pulls items from inputCh, applies step and pushes the outcome
// to outCh until inputCh is closed or ctx is done.
func Locomotive[In, Out any](ctx context.Context, inputCh <-chan In, outCh chan<- Out,
	step func(ctx context.Context, input In) Out,
	handlers CancellationHandlers[In, Out], wg *sync.WaitGroup) {
	defer wg.Done()

	for {
		select {
		case <-ctx.Done():
			if handlers.OnCancel != nil {
				handlers.OnCancel(ctx, inputCh)
			}
			return
		case in, ok := <-inputCh:
			if !ok {
				return
			}

			if ctx.Err() != nil {
				if handlers.OnCancelUnprocessed != nil {
					handlers.OnCancelUnprocessed(ctx, in)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh)
				}
				return
			}

			processed := step(ctx, in)

			select {
			case <-ctx.Done():
				if handlers.OnCancelProcessed != nil {
					handlers.OnCancelProcessed(ctx, in, processed)
				}
				if handlers.OnCancel != nil {
					handlers.OnCancel(ctx, inputCh)
				}
				return
			case outCh <- processed:
			}
		}
	}
}
