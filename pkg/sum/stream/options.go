package stream

import "context"

type OptionKey string

const WorkerOptionKey OptionKey = "worker_options"

type WorkerOptions struct {
	MaxCount int
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxCount: maxWorkers})
}

// GetWorkerMaxCount returns the worker count stored in ctx, or
// defaultMaxWorkers when there is none or it is not positive.
func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount > 0 {
		return options.MaxCount
	}
	return defaultMaxWorkers
}
