package runs

import (
	"context"
	"sync"

	"github.com/reusee/taibf/logs"
	"github.com/reusee/taibf/sources"
	"github.com/reusee/taibf/syncs"
	"github.com/reusee/taibf/tapeconfigs"
)

// Batch runs every source on its own machine, at most MaxParallel at a time.
// Results are in source order. Sources not started when ctx is done get
// ctx.Err() as their error.
type Batch func(ctx context.Context, srcs []sources.Source) []Result

func (Module) Batch(
	newVM NewVM,
	run Run,
	maxParallel tapeconfigs.MaxParallel,
	logger logs.Logger,
) Batch {
	return func(ctx context.Context, srcs []sources.Source) []Result {
		logger.InfoContext(ctx, "batch",
			"programs", len(srcs),
			"parallel", int(maxParallel),
		)

		results := make([]Result, len(srcs))
		sem := syncs.NewSemaphore(int(maxParallel))
		wg := new(sync.WaitGroup)
		for i, src := range srcs {
			sem.Acquire()
			if err := ctx.Err(); err != nil {
				sem.Release()
				results[i] = Result{
					Source: src,
					Err:    err,
				}
				continue
			}
			wg.Add(1)
			go func() {
				defer wg.Done()
				defer sem.Release()
				results[i] = run(ctx, newVM(), src)
			}()
		}
		wg.Wait()
		return results
	}
}
