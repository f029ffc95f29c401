package route

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ShortestPaths answers queries concurrently, at most parallelism at a time,
// and returns the results in query order.
//
// The graph is shared read-only; each query owns its engine state. Per-query
// failures are reported in Result.Err and never abort the batch. The only
// errors returned are ErrBadParallelism and a cancelled ctx, in which case
// queries not yet started are skipped.
func (r *Router) ShortestPaths(ctx context.Context, queries []Query, parallelism int) ([]Result, error) {
	if parallelism <= 0 {
		return nil, ErrBadParallelism
	}

	results := make([]Result, len(queries))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(parallelism)

	for i, q := range queries {
		if err := gCtx.Err(); err != nil {
			break
		}
		i, q := i, q
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			results[i] = r.ShortestPath(q.Source, q.Destination, q.Algorithm)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}
