package worker

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ParallelFunc is a function that can be executed in parallel.
type ParallelFunc func(ctx context.Context) error

// ParallelResult holds the results from parallel operations.
type ParallelResult struct {
	Errors []error
}

// RunParallel executes funcs with at most limit running at once and returns
// when all complete. A failing function does not stop the others; its error
// is collected instead. limit <= 0 means no bound.
func RunParallel(ctx context.Context, limit int, funcs []ParallelFunc) ParallelResult {
	if len(funcs) == 0 {
		return ParallelResult{}
	}

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	errs := make([]error, len(funcs))

	for i, fn := range funcs {
		g.Go(func() error {
			errs[i] = fn(ctx)
			return nil // a non-nil return would cancel the siblings
		})
	}
	_ = g.Wait()

	var nonNilErrors []error
	for _, err := range errs {
		if err != nil {
			nonNilErrors = append(nonNilErrors, err)
		}
	}
	return ParallelResult{Errors: nonNilErrors}
}
