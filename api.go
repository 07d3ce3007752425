package astar

import (
	"context"
	"errors"
	"runtime"

	"go.uber.org/zap"
)

// ErrBudgetExceeded is returned when WithMaxExpansions is set and the search expanded
// that many nodes without matching the goal.
var ErrBudgetExceeded = errors.New("astar: expansion budget exceeded")

// Graph is generic over node type N, goal type G and cost type C.
// N must be comparable so it can be used in maps.
//
// The value implementing Graph is the shared state of a search: it is only read, never
// mutated, and the same answers must come back for the same node during one search.
type Graph[N comparable, G any, C Cost] interface {
	// Neighbors returns every node directly reachable from node and the cost of the edge.
	Neighbors(node N) []Neighbor[N, C]
	// Heuristic estimates the remaining cost from node to any node matching goal.
	// It must never overestimate for the returned path to be the cheapest one.
	Heuristic(node N, goal G) C
	// GoalMatch reports whether node satisfies goal.
	GoalMatch(node N, goal G) bool
}

// Neighbor represents a reachable node with a cost.
type Neighbor[N comparable, C Cost] struct {
	ID   N
	Cost C
}

// Heuristic returns the estimated cost from node to goal.
type Heuristic[N comparable, G any, C Cost] func(node N, goal G) C

// Result contains the outcome of a search
type Result[N comparable, C Cost] struct {
	Path          []N
	TotalCost     C
	ExpandedNodes int
	Found         bool
}

// Options defines parameters for the search.
type Options struct {
	// NumberOfWorkers bounds how many queries SearchAll runs at once.
	NumberOfWorkers int
	// MaxExpansions stops a search with ErrBudgetExceeded after that many expansions. Zero means unbounded.
	MaxExpansions int
	Logger        *zap.Logger
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithWorkers specifies how many independent searches SearchAll may run concurrently.
func WithWorkers(numberOfWorkers int) Option {
	return func(options *Options) { options.NumberOfWorkers = numberOfWorkers }
}

// WithMaxExpansions bounds the number of node expansions of a single search.
func WithMaxExpansions(maxExpansions int) Option {
	return func(options *Options) { options.MaxExpansions = maxExpansions }
}

// WithLogger sets the logger used for search lifecycle events.
func WithLogger(logger *zap.Logger) Option {
	return func(options *Options) { options.Logger = logger }
}

func applyOptions(options []Option) Options {
	searchOptions := Options{
		NumberOfWorkers: runtime.NumCPU(),
	}
	for _, option := range options {
		option(&searchOptions)
	}
	if searchOptions.NumberOfWorkers < 1 {
		searchOptions.NumberOfWorkers = 1
	}
	if searchOptions.Logger == nil {
		searchOptions.Logger = zap.NewNop()
	}
	return searchOptions
}

// Search runs A* from startNode until a node matching goal is expanded or the
// frontier is empty. An unreachable goal yields a Result with Found set to false and a
// nil error; errors come only from ctx or from WithMaxExpansions.
func Search[N comparable, G any, C Cost](
	contextObject context.Context,
	graph Graph[N, G, C],
	startNode N,
	goal G,
	options ...Option,
) (Result[N, C], error) {
	return NewStepper(graph, startNode, goal, options...).Run(contextObject)
}

// Find returns the cheapest path from start to a node matching goal, inclusive of both
// ends, or false if no such node is reachable.
func Find[N comparable, G any, C Cost](graph Graph[N, G, C], start N, goal G) ([]N, bool) {
	result, err := Search(context.Background(), graph, start, goal)
	if err != nil || !result.Found {
		return nil, false
	}
	return result.Path, true
}
