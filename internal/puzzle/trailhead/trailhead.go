// Package trailhead counts hiking trails on a topographic map: a trail climbs from
// height 0 to height 9 one unit per step, moving up, down, left or right.
package trailhead

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdrpinto/astar/v2"
)

type Point struct {
	Row, Col int
}

// Map holds the height of every cell. It is only read after parsing, so searches over it
// can run concurrently.
type Map struct {
	heights map[Point]int
}

func Parse(input string) (*Map, error) {
	m := &Map{heights: make(map[Point]int)}
	for row, line := range strings.Split(strings.TrimSpace(input), "\n") {
		for col, ch := range strings.TrimSpace(line) {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("trailhead: improper height %q at %d,%d", ch, row, col)
			}
			m.heights[Point{row, col}] = int(ch - '0')
		}
	}
	return m, nil
}

func (m *Map) uphill(p Point) []astar.Neighbor[Point, int] {
	height := m.heights[p]
	var out []astar.Neighbor[Point, int]
	for _, d := range [...]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		next := Point{p.Row + d.Row, p.Col + d.Col}
		if h, ok := m.heights[next]; ok && h == height+1 {
			out = append(out, astar.Neighbor[Point, int]{ID: next, Cost: 1})
		}
	}
	return out
}

func (m *Map) graph() astar.Funcs[Point, Point, int] {
	return astar.Funcs[Point, Point, int]{
		NeighborsFunc: m.uphill,
		HeuristicFunc: func(p, goal Point) int { return abs(goal.Row-p.Row) + abs(goal.Col-p.Col) },
		GoalMatchFunc: func(p, goal Point) bool { return p == goal },
	}
}

func (m *Map) ofHeight(height int) []Point {
	var points []Point
	for p, h := range m.heights {
		if h == height {
			points = append(points, p)
		}
	}
	return points
}

// Score is the number of (trailhead, summit) pairs joined by at least one trail.
func (m *Map) Score(ctx context.Context, options ...astar.Option) (int, error) {
	var queries []astar.Query[Point, Point]
	for _, zero := range m.ofHeight(0) {
		for _, nine := range m.ofHeight(9) {
			queries = append(queries, astar.Query[Point, Point]{Start: zero, Goal: nine})
		}
	}
	results, err := astar.SearchAll(ctx, m.graph(), queries, options...)
	if err != nil {
		return 0, err
	}
	reachable := 0
	for _, result := range results {
		if result.Found {
			reachable++
		}
	}
	return reachable, nil
}

// Rating is the number of distinct trails from every trailhead.
func (m *Map) Rating() int {
	memo := make(map[Point]int)
	var trails func(p Point) int
	trails = func(p Point) int {
		if m.heights[p] == 9 {
			return 1
		}
		if n, ok := memo[p]; ok {
			return n
		}
		total := 0
		for _, next := range m.uphill(p) {
			total += trails(next.ID)
		}
		memo[p] = total
		return total
	}
	rating := 0
	for _, zero := range m.ofHeight(0) {
		rating += trails(zero)
	}
	return rating
}

func Part1(ctx context.Context, input string, options ...astar.Option) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Score(ctx, options...)
}

func Part2(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Rating(), nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
