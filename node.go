package astar

// Node is the node-centred form of the search contract: the node type itself answers
// heuristic, neighbor and goal queries, given a read-only shared state S.
//
// Only what uniquely identifies a state belongs in N; it is used as a map key and copied
// into the bookkeeping and the returned path. Everything needed to answer the queries that
// does not identify a state belongs in S.
type Node[N comparable, G, S any, C Cost] interface {
	comparable
	Heuristic(goal G, state S) C
	Neighbors(state S) []Neighbor[N, C]
	GoalMatch(goal G, state S) bool
}

// Nodes adapts a type implementing Node into a Graph bound to State.
type Nodes[N Node[N, G, S, C], G, S any, C Cost] struct {
	State S
}

func (nodes Nodes[N, G, S, C]) Neighbors(node N) []Neighbor[N, C] {
	return node.Neighbors(nodes.State)
}

func (nodes Nodes[N, G, S, C]) Heuristic(node N, goal G) C {
	return node.Heuristic(goal, nodes.State)
}

func (nodes Nodes[N, G, S, C]) GoalMatch(node N, goal G) bool {
	return node.GoalMatch(goal, nodes.State)
}

// Funcs builds a Graph from closures. A nil HeuristicFunc estimates zero everywhere,
// which turns the search into Dijkstra's algorithm.
type Funcs[N comparable, G any, C Cost] struct {
	NeighborsFunc func(node N) []Neighbor[N, C]
	HeuristicFunc Heuristic[N, G, C]
	GoalMatchFunc func(node N, goal G) bool
}

func (funcs Funcs[N, G, C]) Neighbors(node N) []Neighbor[N, C] {
	return funcs.NeighborsFunc(node)
}

func (funcs Funcs[N, G, C]) Heuristic(node N, goal G) C {
	if funcs.HeuristicFunc == nil {
		var zero C
		return zero
	}
	return funcs.HeuristicFunc(node, goal)
}

func (funcs Funcs[N, G, C]) GoalMatch(node N, goal G) bool {
	return funcs.GoalMatchFunc(node, goal)
}
