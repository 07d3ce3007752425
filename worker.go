package astar

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Query is one independent search request for SearchAll.
type Query[N comparable, G any] struct {
	Start N
	Goal  G
}

// SearchAll runs every query as its own search, at most NumberOfWorkers at a time.
// The graph is shared by all of them and must therefore tolerate concurrent reads.
// Results are in query order; the first error cancels the remaining searches.
func SearchAll[N comparable, G any, C Cost](
	contextObject context.Context,
	graph Graph[N, G, C],
	queries []Query[N, G],
	options ...Option,
) ([]Result[N, C], error) {
	searchOptions := applyOptions(options)
	results := make([]Result[N, C], len(queries))

	group, groupContext := errgroup.WithContext(contextObject)
	group.SetLimit(searchOptions.NumberOfWorkers)
	for i, query := range queries {
		group.Go(func() error {
			result, err := Search(groupContext, graph, query.Start, query.Goal, options...)
			if err != nil {
				return err
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
