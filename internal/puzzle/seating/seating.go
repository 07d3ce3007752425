// Package seating finds the circular seating with the greatest total happiness.
package seating

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/pdrpinto/astar/v2/combinations"
)

var linePattern = regexp.MustCompile(
	`^([A-Za-z]+) would (gain|lose) (0|[1-9][0-9]*) happiness units? by sitting next to ([A-Za-z]+)\.$`)

// Table maps a guest to how much each neighbor changes their happiness.
type Table map[string]map[string]int

func Parse(input string) (Table, error) {
	table := make(Table)
	for _, line := range strings.Split(strings.TrimSpace(input), "\n") {
		caps := linePattern.FindStringSubmatch(strings.TrimSpace(line))
		if caps == nil {
			return nil, fmt.Errorf("seating: bad input line %q", line)
		}
		delta, err := strconv.Atoi(caps[3])
		if err != nil {
			return nil, fmt.Errorf("seating: %w", err)
		}
		if caps[2] == "lose" {
			delta = -delta
		}
		if table[caps[1]] == nil {
			table[caps[1]] = make(map[string]int)
		}
		table[caps[1]][caps[4]] = delta
	}
	return table, nil
}

// Best is the highest total happiness over all arrangements. Rotations of a circle are
// equivalent, so the first guest stays put and only the others are permuted.
func (t Table) Best() int {
	guests := make([]string, 0, len(t))
	for guest := range t {
		guests = append(guests, guest)
	}
	if len(guests) < 2 {
		return 0
	}
	slices.Sort(guests)

	best := 0
	first := true
	for order := range combinations.Permutations(guests[1:]) {
		order = append(order, guests[0])
		total := 0
		for i, guest := range order {
			left := order[(i+len(order)-1)%len(order)]
			right := order[(i+1)%len(order)]
			total += t[guest][left] + t[guest][right]
		}
		if first || total > best {
			best, first = total, false
		}
	}
	return best
}

// WithGuest returns a copy of the table with an indifferent extra guest.
func (t Table) WithGuest(name string) Table {
	out := make(Table, len(t)+1)
	out[name] = make(map[string]int, len(t))
	for guest, feelings := range t {
		out[guest] = make(map[string]int, len(feelings)+1)
		for other, delta := range feelings {
			out[guest][other] = delta
		}
		out[guest][name] = 0
		out[name][guest] = 0
	}
	return out
}

func Part1(input string) (int, error) {
	t, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return t.Best(), nil
}

func Part2(input string) (int, error) {
	t, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return t.WithGuest("Yourself").Best(), nil
}
