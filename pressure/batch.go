package pressure

import (
	"context"
	"fmt"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/valves/valve"
)

// Job is one independent search for SolveAll.
type Job struct {
	Graph   *valve.Graph
	Options []Option
}

// SolveAll runs jobs concurrently, at most limit at a time (limit ≤ 0
// means unbounded). Every job gets its own memo cache. Results keep the
// order of jobs; the first failure cancels the jobs still running.
// A nil ctx is treated as context.Background().
func SolveAll(ctx context.Context, jobs []Job, limit int) ([]Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	eg, egCtx := errgroup.WithContext(ctx)
	if limit > 0 {
		eg.SetLimit(limit)
	}

	out := make([]Result, len(jobs))
	for i, job := range jobs {
		eg.Go(func() error {
			opts := append(slices.Clone(job.Options), WithContext(egCtx))
			res, err := Solve(job.Graph, opts...)
			if err != nil {
				return fmt.Errorf("pressure: job %d: %w", i, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
