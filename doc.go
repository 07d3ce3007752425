// Package astar provides a generic best-first (A*) search over caller-defined graphs.
//
// The engine knows nothing about what a node represents. Callers describe their state
// space through a Graph (or the node-centred Node contract adapted with Nodes, or plain
// closures via Funcs) and get back the cheapest path from a start node to any node that
// matches a goal.
//
// It exposes these entry points:
//
//   - Find: the plain query, returning the path and whether one exists.
//   - Search: run the algorithm to completion under a context and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or debugging tools.
//   - SearchAll: run independent queries over a shared read-only graph on a bounded set of goroutines.
//
// A single search is single-threaded and owns its frontier and bookkeeping; nothing is
// shared between calls. "No path" is an ordinary outcome, not an error.
package astar
