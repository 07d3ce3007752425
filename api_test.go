package astar_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/pdrpinto/astar/v2"
)

type cell struct{ Row, Col int }

// grid is a 4-connected, unit-cost grid with optional walls.
type grid struct {
	width, height int
	walls         map[cell]bool
}

func (g grid) Neighbors(c cell) []astar.Neighbor[cell, int] {
	out := make([]astar.Neighbor[cell, int], 0, 4)
	for _, d := range []cell{{0, 1}, {1, 0}, {0, -1}, {-1, 0}} {
		next := cell{c.Row + d.Row, c.Col + d.Col}
		if next.Row < 0 || next.Col < 0 || next.Row >= g.height || next.Col >= g.width || g.walls[next] {
			continue
		}
		out = append(out, astar.Neighbor[cell, int]{ID: next, Cost: 1})
	}
	return out
}

func (g grid) Heuristic(c, goal cell) int { return abs(c.Row-goal.Row) + abs(c.Col-goal.Col) }

func (g grid) GoalMatch(c, goal cell) bool { return c == goal }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// requireValidPath checks the path starts at start, ends on a goal match, follows real
// edges, and returns the summed edge cost.
func requireValidPath[N comparable, G any, C astar.Cost](t *testing.T, graph astar.Graph[N, G, C], path []N, start N, goal G) C {
	t.Helper()
	require.NotEmpty(t, path)
	require.Equal(t, start, path[0])
	require.True(t, graph.GoalMatch(path[len(path)-1], goal), "last node must match the goal")
	var total C
	for i := 1; i < len(path); i++ {
		var cheapest C
		found := false
		for _, neighbor := range graph.Neighbors(path[i-1]) {
			if neighbor.ID == path[i] && (!found || neighbor.Cost < cheapest) {
				cheapest = neighbor.Cost
				found = true
			}
		}
		require.Truef(t, found, "no edge from %v to %v", path[i-1], path[i])
		total += cheapest
	}
	return total
}

func TestSearchOpenGrid(t *testing.T) {
	g := grid{width: 3, height: 3}
	start, goal := cell{0, 0}, cell{2, 2}

	result, err := astar.Search(context.Background(), g, start, goal)
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Len(t, result.Path, 5)
	assert.Equal(t, 4, result.TotalCost)
	assert.Equal(t, result.TotalCost, requireValidPath(t, g, result.Path, start, goal))
	assert.Positive(t, result.ExpandedNodes)
}

func TestSearchWallForcesDetour(t *testing.T) {
	open := grid{width: 5, height: 5}
	walled := grid{width: 5, height: 5, walls: map[cell]bool{
		{2, 0}: true, {2, 1}: true, {2, 2}: true, {2, 3}: true,
	}}
	start, goal := cell{0, 2}, cell{4, 2}

	direct, err := astar.Search(context.Background(), open, start, goal)
	require.NoError(t, err)
	detour, err := astar.Search(context.Background(), walled, start, goal)
	require.NoError(t, err)

	require.True(t, detour.Found)
	// The only gap is two columns away: two steps out and two steps back.
	assert.Equal(t, 4, direct.TotalCost)
	assert.Equal(t, direct.TotalCost+2*2, detour.TotalCost)
	assert.Contains(t, detour.Path, cell{2, 4})
	assert.Equal(t, detour.TotalCost, requireValidPath(t, walled, detour.Path, start, goal))
}

func TestSearchStartMatchesGoal(t *testing.T) {
	g := grid{width: 3, height: 3}
	result, err := astar.Search(context.Background(), g, cell{1, 1}, cell{1, 1})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, []cell{{1, 1}}, result.Path)
	assert.Zero(t, result.TotalCost)
	assert.Equal(t, 1, result.ExpandedNodes)
}

func TestSearchNoPath(t *testing.T) {
	t.Run("isolated start", func(t *testing.T) {
		g := grid{width: 1, height: 1}
		result, err := astar.Search(context.Background(), g, cell{0, 0}, cell{5, 5})
		require.NoError(t, err)
		assert.False(t, result.Found)
		assert.Nil(t, result.Path)
	})

	t.Run("walled off goal", func(t *testing.T) {
		g := grid{width: 4, height: 4, walls: map[cell]bool{
			{2, 3}: true, {3, 2}: true,
		}}
		result, err := astar.Search(context.Background(), g, cell{0, 0}, cell{3, 3})
		require.NoError(t, err)
		assert.False(t, result.Found)
		// Every reachable cell gets expanded before giving up.
		assert.Equal(t, 4*4-3, result.ExpandedNodes)
	})
}

func TestFind(t *testing.T) {
	g := grid{width: 4, height: 2}
	path, ok := astar.Find(g, cell{0, 0}, cell{1, 3})
	require.True(t, ok)
	assert.Len(t, path, 5)

	path, ok = astar.Find(g, cell{0, 0}, cell{9, 9})
	assert.False(t, ok)
	assert.Nil(t, path)
}

// reopenGraph has an admissible but inconsistent heuristic on B: C is first reached
// through A and must be improved after it has already been expanded.
func reopenGraph() astar.Funcs[string, string, int] {
	edges := map[string][]astar.Neighbor[string, int]{
		"S": {{ID: "A", Cost: 1}, {ID: "B", Cost: 2}},
		"A": {{ID: "C", Cost: 3}},
		"B": {{ID: "C", Cost: 1}},
		"C": {{ID: "G", Cost: 3}},
	}
	estimates := map[string]int{"B": 3}
	return astar.Funcs[string, string, int]{
		NeighborsFunc: func(node string) []astar.Neighbor[string, int] { return edges[node] },
		HeuristicFunc: func(node, _ string) int { return estimates[node] },
		GoalMatchFunc: func(node, goal string) bool { return node == goal },
	}
}

func TestSearchReopensImprovedNodes(t *testing.T) {
	graph := reopenGraph()
	result, err := astar.Search(context.Background(), graph, "S", "G")
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.Equal(t, 6, result.TotalCost)
	assert.Equal(t, []string{"S", "B", "C", "G"}, result.Path)
}

// weightedGraph is a random directed graph with non-negative integer edge costs.
type weightedGraph struct {
	edges    map[int][]astar.Neighbor[int, int]
	estimate map[int]int
}

func (w weightedGraph) Neighbors(node int) []astar.Neighbor[int, int] { return w.edges[node] }
func (w weightedGraph) Heuristic(node, _ int) int                    { return w.estimate[node] }
func (w weightedGraph) GoalMatch(node, goal int) bool                { return node == goal }

func randomGraph(r *rand.Rand, nodes, edgesPerNode int) map[int][]astar.Neighbor[int, int] {
	edges := make(map[int][]astar.Neighbor[int, int], nodes)
	for from := 0; from < nodes; from++ {
		for e := 0; e < edgesPerNode; e++ {
			edges[from] = append(edges[from], astar.Neighbor[int, int]{ID: r.Intn(nodes), Cost: r.Intn(10)})
		}
	}
	return edges
}

// dijkstra is a quadratic baseline: cheapest cost from start to every node.
func dijkstra(edges map[int][]astar.Neighbor[int, int], nodes, start int) map[int]int {
	dist := map[int]int{start: 0}
	done := make(map[int]bool, nodes)
	for {
		best, bestCost := -1, 0
		for node, cost := range dist {
			if !done[node] && (best == -1 || cost < bestCost) {
				best, bestCost = node, cost
			}
		}
		if best == -1 {
			return dist
		}
		done[best] = true
		for _, e := range edges[best] {
			if known, ok := dist[e.ID]; !ok || bestCost+e.Cost < known {
				dist[e.ID] = bestCost + e.Cost
			}
		}
	}
}

func reverse(edges map[int][]astar.Neighbor[int, int]) map[int][]astar.Neighbor[int, int] {
	reversed := make(map[int][]astar.Neighbor[int, int], len(edges))
	for from, out := range edges {
		for _, e := range out {
			reversed[e.ID] = append(reversed[e.ID], astar.Neighbor[int, int]{ID: from, Cost: e.Cost})
		}
	}
	return reversed
}

func TestSearchMatchesDijkstraBaseline(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	const nodes = 40
	for trial := 0; trial < 50; trial++ {
		edges := randomGraph(r, nodes, 3)
		start, goal := r.Intn(nodes), r.Intn(nodes)
		fromStart := dijkstra(edges, nodes, start)
		toGoal := dijkstra(reverse(edges), nodes, goal)

		// Half the true remaining cost never overestimates but is rarely consistent.
		estimate := make(map[int]int, len(toGoal))
		for node, remaining := range toGoal {
			estimate[node] = remaining / 2
		}

		for name, graph := range map[string]weightedGraph{
			"admissible": {edges: edges, estimate: estimate},
			"zero":       {edges: edges},
		} {
			result, err := astar.Search(context.Background(), graph, start, goal)
			require.NoError(t, err)
			want, reachable := fromStart[goal]
			require.Equalf(t, reachable, result.Found, "trial %d %s", trial, name)
			if !reachable {
				continue
			}
			assert.Equalf(t, want, result.TotalCost, "trial %d %s", trial, name)
			assert.Equal(t, result.TotalCost, requireValidPath(t, graph, result.Path, start, goal))
		}
	}
}

func TestSearchFloatCosts(t *testing.T) {
	type point struct{ X, Y int }
	graph := astar.Funcs[point, point, float64]{
		NeighborsFunc: func(p point) []astar.Neighbor[point, float64] {
			var out []astar.Neighbor[point, float64]
			for _, d := range []point{{1, 0}, {0, 1}, {1, 1}} {
				next := point{p.X + d.X, p.Y + d.Y}
				if next.X > 3 || next.Y > 3 {
					continue
				}
				cost := 1.0
				if d.X != 0 && d.Y != 0 {
					cost = 1.5
				}
				out = append(out, astar.Neighbor[point, float64]{ID: next, Cost: cost})
			}
			return out
		},
		GoalMatchFunc: func(p, goal point) bool { return p == goal },
	}

	result, err := astar.Search(context.Background(), graph, point{0, 0}, point{3, 3})
	require.NoError(t, err)
	require.True(t, result.Found)
	assert.InDelta(t, 4.5, result.TotalCost, 1e-9)
	assert.Len(t, result.Path, 4)
}

func TestSearchBudgetExceeded(t *testing.T) {
	g := grid{width: 10, height: 10}
	result, err := astar.Search(context.Background(), g, cell{0, 0}, cell{9, 9}, astar.WithMaxExpansions(3))
	require.ErrorIs(t, err, astar.ErrBudgetExceeded)
	assert.False(t, result.Found)
	assert.Equal(t, 3, result.ExpandedNodes)
}

func TestSearchContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := astar.Search(ctx, grid{width: 10, height: 10}, cell{0, 0}, cell{9, 9})
	require.True(t, errors.Is(err, context.Canceled))
}

func TestSearchLogsLifecycle(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	_, err := astar.Search(context.Background(), grid{width: 3, height: 3}, cell{0, 0}, cell{2, 2},
		astar.WithLogger(zap.New(core)))
	require.NoError(t, err)

	var messages []string
	for _, entry := range logs.All() {
		messages = append(messages, entry.Message)
	}
	assert.Equal(t, []string{"search started", "goal matched"}, messages)
	assert.Equal(t, int64(4), logs.FilterMessage("goal matched").All()[0].ContextMap()["cost"])
}
