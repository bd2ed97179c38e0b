package sorting

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Job is one generation request in a batch.
type Job struct {
	Algorithm Algorithm
	Input     []int
	Label     string
}

// Result pairs a Job with the trace generated for it.
type Result struct {
	Job
	Trace Trace
	Stats Stats
}

// GenerateBatch runs independent jobs concurrently, at most one per CPU.
// Results keep the order of jobs. The first failing job cancels the rest.
func GenerateBatch(ctx context.Context, jobs []Job) ([]Result, error) {
	results := make([]Result, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			trace, stats, err := Generate(job.Algorithm, job.Input)
			if err != nil {
				return err
			}
			results[i] = Result{Job: job, Trace: trace, Stats: stats}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
