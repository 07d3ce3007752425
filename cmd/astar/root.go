package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdrpinto/astar/v2"
	"github.com/pdrpinto/astar/v2/internal/config"
)

// cli is the state shared by the root command and its puzzle subcommands.
type cli struct {
	// Global flags
	configPath    string
	verbose       bool
	timeout       time.Duration
	maxExpansions int
	workers       int
	input         string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}
	rootCmd := &cobra.Command{
		Use:   "astar",
		Short: "Solve search puzzles with a generic A* engine",
		Long: `astar reads a puzzle from --input (or stdin), solves it and prints
one "PartN: answer" line per part.

Search limits come from the config file, then ASTAR_* environment variables,
then command-line flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "YAML config file")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Enable debug logging")
	flags.DurationVar(&c.timeout, "timeout", 0, "Abort the run after this long (default from config)")
	flags.IntVar(&c.maxExpansions, "max-expansions", 0, "Expansion budget per search, 0 for unlimited")
	flags.IntVar(&c.workers, "workers", 0, "Concurrent searches for multi-query puzzles, 0 for one per CPU")
	flags.StringVarP(&c.input, "input", "i", "", "Puzzle input file (default: stdin)")

	for _, p := range puzzles {
		rootCmd.AddCommand(c.puzzleCmd(p))
	}
	return rootCmd
}

// setup loads config, folds in explicitly set flags and builds the logger.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("timeout") {
		cfg.Search.Timeout = c.timeout.String()
	}
	if flags.Changed("max-expansions") {
		cfg.Search.MaxExpansions = c.maxExpansions
	}
	if flags.Changed("workers") {
		cfg.Search.Workers = c.workers
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := cfg.Logging.Build(c.verbose)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.logger = logger
	return nil
}

// searchOptions turns the effective config into engine options.
func (c *cli) searchOptions() []astar.Option {
	options := []astar.Option{
		astar.WithLogger(c.logger),
		astar.WithMaxExpansions(c.cfg.Search.MaxExpansions),
	}
	if c.cfg.Search.Workers > 0 {
		options = append(options, astar.WithWorkers(c.cfg.Search.Workers))
	}
	return options
}
