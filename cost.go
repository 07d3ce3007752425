package astar

import "golang.org/x/exp/constraints"

// Cost is the set of types usable for edge costs and heuristic estimates.
// The zero value is the cost of the start node.
type Cost interface {
	constraints.Integer | constraints.Float
}
