package runners

import (
	"context"
	"fmt"

	"github.com/reusee/turing/descs"
	"github.com/reusee/turing/machines"
	"github.com/reusee/turing/syncs"
	"github.com/reusee/turing/tmconfigs"
	"golang.org/x/sync/errgroup"
)

// RunBatch runs every description on its own machine. Results keep the input order.
// The first failure cancels runs not yet started.
type RunBatch func(ctx context.Context, descriptions []descs.Description, options ...Option) ([]machines.Result, error)

func (Module) RunBatch(
	run Run,
	parallelism tmconfigs.Parallelism,
) RunBatch {
	return func(ctx context.Context, descriptions []descs.Description, options ...Option) ([]machines.Result, error) {
		results := make([]machines.Result, len(descriptions))
		sem := syncs.NewSemaphore(int(parallelism))
		group, ctx := errgroup.WithContext(ctx)
		for i, desc := range descriptions {
			group.Go(func() error {
				sem.Acquire()
				defer sem.Release()
				if err := ctx.Err(); err != nil {
					return err
				}
				result, err := run(ctx, desc, options...)
				if err != nil {
					return fmt.Errorf("description %d: %w", i, err)
				}
				results[i] = result
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return nil, err
		}
		return results, nil
	}
}
