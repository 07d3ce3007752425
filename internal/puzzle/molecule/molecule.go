// Package molecule works with replacement rules over molecule strings: counting the
// molecules one replacement away, and finding the fewest replacements that build a
// target from a single electron "e".
package molecule

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/pdrpinto/astar/v2"
)

// Electron is the molecule every fabrication starts from.
const Electron = "e"

type Rule struct {
	Source      string
	Replacement string
}

// Plant is the rule table and the medicine molecule. It doubles as the search graph for
// reducing the medicine back to an electron.
type Plant struct {
	Rules  []Rule
	Target string
}

var (
	rulePattern   = regexp.MustCompile(`^([a-zA-Z]+) => ([a-zA-Z]+)$`)
	targetPattern = regexp.MustCompile(`^[a-zA-Z]+$`)
)

func Parse(input string) (*Plant, error) {
	rules, target, ok := strings.Cut(strings.TrimSpace(input), "\n\n")
	if !ok {
		return nil, fmt.Errorf("molecule: rules and target should be separated by a blank line")
	}
	p := &Plant{Target: strings.TrimSpace(target)}
	for _, line := range strings.Split(rules, "\n") {
		line = strings.TrimSpace(line)
		caps := rulePattern.FindStringSubmatch(line)
		if caps == nil {
			return nil, fmt.Errorf("molecule: not a valid replacement rule: %q", line)
		}
		p.Rules = append(p.Rules, Rule{Source: caps[1], Replacement: caps[2]})
	}
	if !targetPattern.MatchString(p.Target) {
		return nil, fmt.Errorf("molecule: invalid target %q (not alphabetic)", p.Target)
	}
	return p, nil
}

// replaceEach calls fn with compound after replacing each occurrence of from with to.
// Occurrences may overlap.
func replaceEach(compound, from, to string, fn func(string)) {
	for offset := 0; offset <= len(compound); {
		i := strings.Index(compound[offset:], from)
		if i < 0 {
			return
		}
		at := offset + i
		fn(compound[:at] + to + compound[at+len(from):])
		offset = at + 1
	}
}

// Calibrate counts the distinct molecules one forward replacement away from the target.
func (p *Plant) Calibrate() int {
	distinct := make(map[string]bool)
	for _, rule := range p.Rules {
		replaceEach(p.Target, rule.Source, rule.Replacement, func(m string) { distinct[m] = true })
	}
	return len(distinct)
}

// Neighbors undoes one rule application. Molecules longer than the target are never
// useful and are dropped.
func (p *Plant) Neighbors(compound string) []astar.Neighbor[string, int] {
	seen := make(map[string]bool)
	var out []astar.Neighbor[string, int]
	for _, rule := range p.Rules {
		replaceEach(compound, rule.Replacement, rule.Source, func(m string) {
			if seen[m] || len(m) > len(p.Target) {
				return
			}
			seen[m] = true
			out = append(out, astar.Neighbor[string, int]{ID: m, Cost: 1})
		})
	}
	return out
}

// Heuristic divides the length still to remove by the most any single rule removes,
// rounding up.
func (p *Plant) Heuristic(compound, goal string) int {
	excess := len(compound) - len(goal)
	if excess <= 0 {
		return 0
	}
	shrink := 1
	for _, rule := range p.Rules {
		shrink = max(shrink, len(rule.Replacement)-len(rule.Source))
	}
	return (excess + shrink - 1) / shrink
}

func (p *Plant) GoalMatch(compound, goal string) bool { return compound == goal }

// Fabricate returns the fewest steps from an electron to the target.
func (p *Plant) Fabricate(ctx context.Context, options ...astar.Option) (int, error) {
	result, err := astar.Search(ctx, p, p.Target, Electron, options...)
	if err != nil {
		return 0, err
	}
	if !result.Found {
		return 0, fmt.Errorf("molecule: %q cannot be made from %q", p.Target, Electron)
	}
	return result.TotalCost, nil
}

func Part1(input string) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return p.Calibrate(), nil
}

func Part2(ctx context.Context, input string, options ...astar.Option) (int, error) {
	p, err := Parse(input)
	if err != nil {
		return 0, err
	}
	return p.Fabricate(ctx, options...)
}
