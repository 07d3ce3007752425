// Package blizzard crosses a valley full of blizzards that move one cell per minute and
// wrap around the walls. The blizzard pattern repeats every lcm(width, height) minutes,
// so a search state is a position plus the minute within that cycle.
package blizzard

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/pdrpinto/astar/v2"
)

type direction int

const (
	up direction = iota
	down
	left
	right
)

// blizzard moves along the row or column fixed; offset is its position at minute zero.
type blizzard struct {
	direction direction
	fixed     int
	offset    int
}

type Point struct {
	Row, Col int
}

// Expedition is a search node: where we stand and the minute modulo the blizzard cycle.
type Expedition struct {
	Cycle    int
	Row, Col int
}

// Valley is the shared search state. Blizzard positions per minute are computed lazily
// and cached; the cache is guarded so concurrent searches may share a Valley.
type Valley struct {
	width, height int
	cycle         int
	blizzards     []blizzard

	mu    sync.Mutex
	cache map[int]map[Point]bool
}

var (
	topPattern    = regexp.MustCompile(`^#\.#+$`)
	bottomPattern = regexp.MustCompile(`^#+\.#$`)
)

// Parse reads the valley map. The entrance is the gap in the top wall at column 0 of the
// interior; the exit is the gap in the bottom wall at the last interior column.
func Parse(input string) (*Valley, error) {
	lines := strings.Split(strings.TrimSpace(input), "\n")
	if len(lines) < 3 {
		return nil, fmt.Errorf("blizzard: map too short")
	}
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}
	if !topPattern.MatchString(lines[0]) {
		return nil, fmt.Errorf("blizzard: bad top wall %q", lines[0])
	}
	width := len(lines[0]) - 2
	v := &Valley{width: width, cache: make(map[int]map[Point]bool)}
	for idx, line := range lines[1:] {
		if len(line) != width+2 {
			return nil, fmt.Errorf("blizzard: inconsistent line width on line %d", idx+2)
		}
		if bottomPattern.MatchString(line) {
			if idx != len(lines)-2 {
				return nil, fmt.Errorf("blizzard: bottom wall before the end of input")
			}
			v.height = idx
			break
		}
		if line[0] != '#' || line[width+1] != '#' {
			return nil, fmt.Errorf("blizzard: missing side wall on line %d", idx+2)
		}
		for col, ch := range line[1 : width+1] {
			switch ch {
			case '<':
				v.blizzards = append(v.blizzards, blizzard{direction: left, fixed: idx, offset: col})
			case '>':
				v.blizzards = append(v.blizzards, blizzard{direction: right, fixed: idx, offset: col})
			case '^':
				v.blizzards = append(v.blizzards, blizzard{direction: up, fixed: col, offset: idx})
			case 'v':
				v.blizzards = append(v.blizzards, blizzard{direction: down, fixed: col, offset: idx})
			case '.':
			default:
				return nil, fmt.Errorf("blizzard: bad map glyph %q on line %d", ch, idx+2)
			}
		}
	}
	if v.height == 0 {
		return nil, fmt.Errorf("blizzard: missing bottom wall")
	}
	v.cycle = lcm(v.width, v.height)
	return v, nil
}

// Entrance and Exit are the two gaps in the outer wall.
func (v *Valley) Entrance() Point { return Point{Row: -1, Col: 0} }
func (v *Valley) Exit() Point     { return Point{Row: v.height, Col: v.width - 1} }

func (v *Valley) at(p Point, minute int) Expedition {
	return Expedition{Cycle: minute % v.cycle, Row: p.Row, Col: p.Col}
}

func (v *Valley) snowy(cycle int) map[Point]bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if spots, ok := v.cache[cycle]; ok {
		return spots
	}
	spots := make(map[Point]bool, len(v.blizzards))
	for _, b := range v.blizzards {
		var p Point
		switch b.direction {
		case up:
			p = Point{Row: mod(b.offset-cycle, v.height), Col: b.fixed}
		case down:
			p = Point{Row: mod(b.offset+cycle, v.height), Col: b.fixed}
		case left:
			p = Point{Row: b.fixed, Col: mod(b.offset-cycle, v.width)}
		case right:
			p = Point{Row: b.fixed, Col: mod(b.offset+cycle, v.width)}
		}
		spots[p] = true
	}
	v.cache[cycle] = spots
	return spots
}

func (e Expedition) Heuristic(goal Point, _ *Valley) int {
	return abs(goal.Row-e.Row) + abs(goal.Col-e.Col)
}

// Neighbors are the positions we can occupy next minute, waiting in place included.
func (e Expedition) Neighbors(v *Valley) []astar.Neighbor[Expedition, int] {
	next := (e.Cycle + 1) % v.cycle
	snow := v.snowy(next)
	here := Point{Row: e.Row, Col: e.Col}
	inside := e.Row >= 0 && e.Row < v.height

	candidates := []Point{here}
	if e.Row > 0 {
		candidates = append(candidates, Point{e.Row - 1, e.Col})
	}
	if e.Row < v.height-1 {
		candidates = append(candidates, Point{e.Row + 1, e.Col})
	}
	if inside && e.Col > 0 {
		candidates = append(candidates, Point{e.Row, e.Col - 1})
	}
	if inside && e.Col < v.width-1 {
		candidates = append(candidates, Point{e.Row, e.Col + 1})
	}
	if e.Row == v.height-1 && e.Col == v.width-1 {
		candidates = append(candidates, v.Exit())
	}
	if e.Row == 0 && e.Col == 0 {
		candidates = append(candidates, v.Entrance())
	}

	out := make([]astar.Neighbor[Expedition, int], 0, len(candidates))
	for _, p := range candidates {
		if snow[p] {
			continue
		}
		out = append(out, astar.Neighbor[Expedition, int]{
			ID:   Expedition{Cycle: next, Row: p.Row, Col: p.Col},
			Cost: 1,
		})
	}
	return out
}

// GoalMatch ignores the cycle: arriving at the spot at any minute is fine.
func (e Expedition) GoalMatch(goal Point, _ *Valley) bool {
	return e.Row == goal.Row && e.Col == goal.Col
}

// Cross returns the minutes needed to walk from one point to another, starting at minute.
func (v *Valley) Cross(ctx context.Context, from, to Point, minute int, options ...astar.Option) (int, error) {
	graph := astar.Nodes[Expedition, Point, *Valley, int]{State: v}
	result, err := astar.Search(ctx, graph, v.at(from, minute), to, options...)
	if err != nil {
		return 0, err
	}
	if !result.Found {
		return 0, fmt.Errorf("blizzard: no way from %v to %v at minute %d", from, to, minute)
	}
	return result.TotalCost, nil
}

func Part1(ctx context.Context, input string, options ...astar.Option) (int, error) {
	v, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return v.Cross(ctx, v.Entrance(), v.Exit(), 0, options...)
}

// Part2 goes to the exit, back to the entrance for forgotten snacks, and out again.
func Part2(ctx context.Context, input string, options ...astar.Option) (int, error) {
	v, err := Parse(input)
	if err != nil {
		return 0, err
	}
	minute := 0
	legs := [][2]Point{
		{v.Entrance(), v.Exit()},
		{v.Exit(), v.Entrance()},
		{v.Entrance(), v.Exit()},
	}
	for _, leg := range legs {
		took, err := v.Cross(ctx, leg[0], leg[1], minute, options...)
		if err != nil {
			return 0, err
		}
		minute += took
	}
	return minute, nil
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int { return a / gcd(a, b) * b }

func mod(a, m int) int { return ((a % m) + m) % m }

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
