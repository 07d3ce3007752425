package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/astar/v2"
	"github.com/pdrpinto/astar/v2/internal/puzzle/blizzard"
	"github.com/pdrpinto/astar/v2/internal/puzzle/galaxy"
	"github.com/pdrpinto/astar/v2/internal/puzzle/maze"
	"github.com/pdrpinto/astar/v2/internal/puzzle/molecule"
	"github.com/pdrpinto/astar/v2/internal/puzzle/reindeer"
	"github.com/pdrpinto/astar/v2/internal/puzzle/seating"
	"github.com/pdrpinto/astar/v2/internal/puzzle/trailhead"
)

type solver func(ctx context.Context, input string, options ...astar.Option) (int, error)

// plain adapts a solver that never searches.
func plain(part func(string) (int, error)) solver {
	return func(_ context.Context, input string, _ ...astar.Option) (int, error) {
		return part(input)
	}
}

type puzzle struct {
	name  string
	short string
	parts []solver
}

var puzzles = []puzzle{
	{"maze", "Shortest route from S to G through a walled grid", []solver{maze.Part1}},
	{"reindeer", "Cheapest reindeer race and the tiles on its best paths", []solver{reindeer.Part1, reindeer.Part2}},
	{"trailhead", "Trailhead scores and ratings on a height map", []solver{trailhead.Part1, plain(trailhead.Part2)}},
	{"blizzard", "Fewest minutes to cross a blizzard valley", []solver{blizzard.Part1, blizzard.Part2}},
	{"molecule", "Medicine molecule calibration and fabrication", []solver{plain(molecule.Part1), molecule.Part2}},
	{"seating", "Happiest circular seating arrangement", []solver{plain(seating.Part1), plain(seating.Part2)}},
	{"galaxy", "Pairwise galaxy distances after cosmic expansion", []solver{plain(galaxy.Part1), plain(galaxy.Part2)}},
}

func (c *cli) puzzleCmd(p puzzle) *cobra.Command {
	return &cobra.Command{
		Use:   p.name,
		Short: p.short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.solve(cmd, p)
		},
	}
}

func (c *cli) solve(cmd *cobra.Command, p puzzle) error {
	input, err := c.readInput(cmd)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), c.cfg.GetTimeout())
	defer cancel()

	options := c.searchOptions()
	for i, part := range p.parts {
		start := time.Now()
		answer, err := part(ctx, input, options...)
		if err != nil {
			return fmt.Errorf("%s part %d: %w", p.name, i+1, err)
		}
		c.logger.Info("part solved",
			zap.String("puzzle", p.name),
			zap.Int("part", i+1),
			zap.Duration("elapsed", time.Since(start)))
		fmt.Fprintf(cmd.OutOrStdout(), "Part%d: %d\n", i+1, answer)
	}
	return nil
}

func (c *cli) readInput(cmd *cobra.Command) (string, error) {
	if c.input == "" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(c.input)
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return string(data), nil
}
