package domain

import "context"

// ExecutableTask represents a unit of work the parallel executor can run
type ExecutableTask interface {
	// Name returns a short task identifier used in error reporting
	Name() string

	// IsEnabled reports whether the task should run
	IsEnabled() bool

	// Execute runs the task and returns its result
	Execute(ctx context.Context) (interface{}, error)
}

// ParallelExecutor runs tasks concurrently with bounded parallelism
type ParallelExecutor interface {
	Execute(ctx context.Context, tasks []ExecutableTask) error
}
