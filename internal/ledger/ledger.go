// Package ledger holds the per-search score bookkeeping: best known cost from the start
// (g), estimated total cost (f), and the back-pointers used to rebuild a path.
package ledger

import "golang.org/x/exp/constraints"

type cost interface {
	constraints.Integer | constraints.Float
}

// Ledger maps nodes to their best known scores. It is not safe for concurrent use.
type Ledger[N comparable, C cost] struct {
	start    N
	gScore   map[N]C
	fScore   map[N]C
	cameFrom map[N]N
}

// New returns a ledger seeded with start at zero cost and the given estimate.
func New[N comparable, C cost](start N, estimate C) *Ledger[N, C] {
	var zero C
	return &Ledger[N, C]{
		start:    start,
		gScore:   map[N]C{start: zero},
		fScore:   map[N]C{start: estimate},
		cameFrom: make(map[N]N),
	}
}

// Start returns the node the ledger was seeded with.
func (l *Ledger[N, C]) Start() N { return l.start }

// G returns the best known cost from the start to node.
func (l *Ledger[N, C]) G(node N) (C, bool) {
	g, ok := l.gScore[node]
	return g, ok
}

// F returns the last recorded estimate of the total cost through node.
func (l *Ledger[N, C]) F(node N) (C, bool) {
	f, ok := l.fScore[node]
	return f, ok
}

// Improves reports whether tentative beats the known cost of node, or node is new.
func (l *Ledger[N, C]) Improves(node N, tentative C) bool {
	known, exists := l.gScore[node]
	return !exists || tentative < known
}

// Record stores a strictly better path to node through from.
func (l *Ledger[N, C]) Record(from, node N, g, f C) {
	l.cameFrom[node] = from
	l.gScore[node] = g
	l.fScore[node] = f
}

// Len is the number of nodes discovered so far, start included.
func (l *Ledger[N, C]) Len() int { return len(l.gScore) }

// CameFrom returns a copy of the back-pointer map.
func (l *Ledger[N, C]) CameFrom() map[N]N {
	c := make(map[N]N, len(l.cameFrom))
	for k, v := range l.cameFrom {
		c[k] = v
	}
	return c
}

// Path rebuilds the path from the start to current by following back-pointers.
func (l *Ledger[N, C]) Path(current N) []N {
	path := []N{current}
	for current != l.start {
		previousNode, exists := l.cameFrom[current]
		if !exists {
			break
		}
		path = append(path, previousNode)
		current = previousNode
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
