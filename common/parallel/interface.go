package parallel

import "context"

// Result is the outcome of a single task.
type Result struct {
	Routine int
	Task    int
	Value   interface{}
	err     error
}

// Interface is implemented by workloads executed with Serial. ParallelDo runs
// concurrently on several routines, while ParallelCollect is called on a
// single routine in task order.
type Interface interface {
	ParallelDo(ctx context.Context, routine, task int) (interface{}, error)
	ParallelCollect(result *Result) error
}
