// Package maze is a walled grid with a single start (S) and goal (G), searched with
// unit steps and a Manhattan-distance heuristic.
package maze

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdrpinto/astar/v2"
)

// Point is a grid cell.
type Point struct {
	Row, Col int
}

// Maze is the parsed grid. It is read-only once parsed.
type Maze struct {
	Width, Height int
	Walls         map[Point]bool
	Start, Goal   Point
}

// Parse reads a grid of '.', '#', 'S' and 'G'.
func Parse(input string) (*Maze, error) {
	m := &Maze{Walls: make(map[Point]bool)}
	var haveStart, haveGoal bool
	for row, line := range strings.Split(strings.TrimRight(input, "\n"), "\n") {
		for col, ch := range line {
			p := Point{Row: row, Col: col}
			switch ch {
			case '#':
				m.Walls[p] = true
			case 'S':
				m.Start, haveStart = p, true
			case 'G':
				m.Goal, haveGoal = p, true
			case '.':
			default:
				return nil, fmt.Errorf("maze: bad glyph %q at row %d col %d", ch, row, col)
			}
			m.Width = max(m.Width, col+1)
		}
		m.Height = row + 1
	}
	if !haveStart {
		return nil, fmt.Errorf("maze: missing start")
	}
	if !haveGoal {
		return nil, fmt.Errorf("maze: missing goal")
	}
	return m, nil
}

func (m *Maze) in(p Point) bool {
	return p.Row >= 0 && p.Col >= 0 && p.Row < m.Height && p.Col < m.Width
}

func (m *Maze) Neighbors(p Point) []astar.Neighbor[Point, int] {
	out := make([]astar.Neighbor[Point, int], 0, 4)
	for _, d := range [...]Point{{0, -1}, {0, 1}, {-1, 0}, {1, 0}} {
		next := Point{Row: p.Row + d.Row, Col: p.Col + d.Col}
		if m.in(next) && !m.Walls[next] {
			out = append(out, astar.Neighbor[Point, int]{ID: next, Cost: 1})
		}
	}
	return out
}

func (m *Maze) Heuristic(p, goal Point) int {
	return abs(goal.Row-p.Row) + abs(goal.Col-p.Col)
}

func (m *Maze) GoalMatch(p, goal Point) bool { return p == goal }

// Solve finds the cheapest path from S to G.
func (m *Maze) Solve(ctx context.Context, options ...astar.Option) (astar.Result[Point, int], error) {
	return astar.Search(ctx, m, m.Start, m.Goal, options...)
}

// Render draws the maze with path cells as '*'.
func (m *Maze) Render(path []Point) []string {
	onPath := make(map[Point]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}
	lines := make([]string, 0, m.Height)
	for row := 0; row < m.Height; row++ {
		var b strings.Builder
		for col := 0; col < m.Width; col++ {
			p := Point{Row: row, Col: col}
			switch {
			case onPath[p]:
				b.WriteByte('*')
			case m.Walls[p]:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		lines = append(lines, b.String())
	}
	return lines
}

// Part1 is the length of the cheapest path.
func Part1(ctx context.Context, input string, options ...astar.Option) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	result, err := m.Solve(ctx, options...)
	if err != nil {
		return 0, err
	}
	if !result.Found {
		return 0, fmt.Errorf("maze: no path from %v to %v", m.Start, m.Goal)
	}
	return result.TotalCost, nil
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
