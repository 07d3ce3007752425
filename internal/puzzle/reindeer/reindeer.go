// Package reindeer scores paths through a maze where moving forward costs 1 and every
// quarter turn costs 1000, so the search state includes the facing.
package reindeer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pdrpinto/astar/v2"
)

type Facing int

const (
	North Facing = iota
	East
	South
	West
)

var facings = [...]Facing{North, East, South, West}

func (f Facing) delta() Point {
	switch f {
	case North:
		return Point{-1, 0}
	case South:
		return Point{1, 0}
	case West:
		return Point{0, -1}
	default:
		return Point{0, 1}
	}
}

// TurnCost is the price of rotating from f to to.
func (f Facing) TurnCost(to Facing) int {
	switch (to - f + 4) % 4 {
	case 0:
		return 0
	case 2:
		return 2000
	default:
		return 1000
	}
}

type Point struct {
	Row, Col int
}

func (p Point) add(d Point) Point { return Point{p.Row + d.Row, p.Col + d.Col} }

// Node is a position plus the direction the reindeer faces there.
type Node struct {
	Row, Col int
	Facing   Facing
}

func (n Node) Point() Point { return Point{n.Row, n.Col} }

// Maze is the shared, read-only search state. The map is bordered by walls.
type Maze struct {
	Walls map[Point]bool
	Start Point
	End   Point
}

var errMissing = errors.New("reindeer: map needs both S and E")

// Parse reads a map of '#', '.', 'S' and 'E'.
func Parse(input string) (*Maze, error) {
	m := &Maze{Walls: make(map[Point]bool)}
	var haveStart, haveEnd bool
	for row, line := range strings.Split(strings.TrimSpace(input), "\n") {
		for col, ch := range strings.TrimSpace(line) {
			p := Point{row, col}
			switch ch {
			case '#':
				m.Walls[p] = true
			case '.':
			case 'S':
				m.Start, haveStart = p, true
			case 'E':
				m.End, haveEnd = p, true
			default:
				return nil, fmt.Errorf("reindeer: bad map item %q at %d,%d", ch, row, col)
			}
		}
	}
	if !haveStart || !haveEnd {
		return nil, errMissing
	}
	return m, nil
}

func (n Node) Heuristic(goal Point, _ *Maze) int {
	return abs(goal.Row-n.Row) + abs(goal.Col-n.Col)
}

func (n Node) Neighbors(m *Maze) []astar.Neighbor[Node, int] {
	out := make([]astar.Neighbor[Node, int], 0, 4)
	for _, facing := range facings {
		next := n.Point().add(facing.delta())
		if m.Walls[next] {
			continue
		}
		out = append(out, astar.Neighbor[Node, int]{
			ID:   Node{Row: next.Row, Col: next.Col, Facing: facing},
			Cost: 1 + n.Facing.TurnCost(facing),
		})
	}
	return out
}

// GoalMatch ignores the facing: any arrival on the end tile counts.
func (n Node) GoalMatch(goal Point, _ *Maze) bool {
	return n.Row == goal.Row && n.Col == goal.Col
}

func (m *Maze) graph() astar.Nodes[Node, Point, *Maze, int] {
	return astar.Nodes[Node, Point, *Maze, int]{State: m}
}

func (m *Maze) start() Node {
	return Node{Row: m.Start.Row, Col: m.Start.Col, Facing: East}
}

// BestCost is the lowest score from S (facing east) to E.
func (m *Maze) BestCost(ctx context.Context, options ...astar.Option) (int, error) {
	result, err := astar.Search(ctx, m.graph(), m.start(), m.End, options...)
	if err != nil {
		return 0, err
	}
	if !result.Found {
		return 0, fmt.Errorf("reindeer: no path from %v to %v", m.Start, m.End)
	}
	return result.TotalCost, nil
}

// BestSeats counts the tiles that lie on at least one lowest-score path.
//
// The whole state space is expanded first (the goal is off the map, so the search only
// stops on exhaustion), leaving the cheapest cost to every state. Walking backwards from
// the cheapest end states along edges whose cost adds up exactly recovers every best path.
func (m *Maze) BestSeats(ctx context.Context, options ...astar.Option) (int, error) {
	stepper := astar.NewStepper(m.graph(), m.start(), Point{-1, -1}, options...)
	if _, err := stepper.Run(ctx); err != nil {
		return 0, err
	}

	best := -1
	var frontier []Node
	for _, facing := range facings {
		end := Node{Row: m.End.Row, Col: m.End.Col, Facing: facing}
		cost, ok := stepper.Cost(end)
		switch {
		case !ok:
		case best == -1 || cost < best:
			best = cost
			frontier = []Node{end}
		case cost == best:
			frontier = append(frontier, end)
		}
	}
	if best == -1 {
		return 0, fmt.Errorf("reindeer: no path from %v to %v", m.Start, m.End)
	}

	seen := make(map[Node]bool)
	for _, n := range frontier {
		seen[n] = true
	}
	for len(frontier) > 0 {
		n := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		cost, _ := stepper.Cost(n)
		previous := n.Point().add(Point{-n.Facing.delta().Row, -n.Facing.delta().Col})
		if m.Walls[previous] {
			continue
		}
		for _, facing := range facings {
			from := Node{Row: previous.Row, Col: previous.Col, Facing: facing}
			fromCost, ok := stepper.Cost(from)
			if !ok || seen[from] || fromCost+1+facing.TurnCost(n.Facing) != cost {
				continue
			}
			seen[from] = true
			frontier = append(frontier, from)
		}
	}

	tiles := make(map[Point]bool)
	for n := range seen {
		tiles[n.Point()] = true
	}
	return len(tiles), nil
}

func Part1(ctx context.Context, input string, options ...astar.Option) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.BestCost(ctx, options...)
}

func Part2(ctx context.Context, input string, options ...astar.Option) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.BestSeats(ctx, options...)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
