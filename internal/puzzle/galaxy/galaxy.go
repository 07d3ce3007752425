// Package galaxy measures the distances between stars after empty rows and columns
// of the star map have grown.
package galaxy

import (
	"fmt"
	"slices"
	"strings"

	"github.com/pdrpinto/astar/v2/combinations"
)

type Location struct {
	Row, Col int
}

// StarMap is the set of star positions.
type StarMap struct {
	Stars []Location
}

func Parse(input string) (*StarMap, error) {
	m := &StarMap{}
	for row, line := range strings.Split(strings.TrimSpace(input), "\n") {
		for col, ch := range strings.TrimSpace(line) {
			switch ch {
			case '#':
				m.Stars = append(m.Stars, Location{Row: row, Col: col})
			case '.':
			default:
				return nil, fmt.Errorf("galaxy: bad starfield signifier %q", ch)
			}
		}
	}
	return m, nil
}

// Expand returns a new map where every empty row or column between two stars is
// replaced by factor empty ones.
func (m *StarMap) Expand(factor int) *StarMap {
	stars := slices.Clone(m.Stars)
	spread(stars, func(l *Location) *int { return &l.Col }, factor)
	spread(stars, func(l *Location) *int { return &l.Row }, factor)
	return &StarMap{Stars: stars}
}

func spread(stars []Location, axis func(*Location) *int, factor int) {
	slices.SortFunc(stars, func(a, b Location) int { return *axis(&a) - *axis(&b) })
	adjustment := 0
	for i := 1; i < len(stars); i++ {
		// stars[i-1] has already moved, so measure against its original position.
		previous := *axis(&stars[i-1]) - adjustment
		if gap := *axis(&stars[i]) - previous; gap > 1 {
			adjustment += (gap - 1) * (factor - 1)
		}
		*axis(&stars[i]) += adjustment
	}
}

// Contains reports whether a star sits at loc.
func (m *StarMap) Contains(loc Location) bool {
	return slices.Contains(m.Stars, loc)
}

// Distances sums the Manhattan distance over every pair of stars after expansion.
func (m *StarMap) Distances(factor int) int {
	total := 0
	for pair := range combinations.Combinations(m.Expand(factor).Stars, 2) {
		total += abs(pair[0].Row-pair[1].Row) + abs(pair[0].Col-pair[1].Col)
	}
	return total
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func Part1(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Distances(2), nil
}

func Part2(input string) (int, error) {
	m, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return m.Distances(1_000_000), nil
}
