// Package config holds the command-line tool's settings: search limits and logging.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all astar CLI configuration.
type Config struct {
	Search  SearchConfig  `yaml:"search"`
	Logging LoggingConfig `yaml:"logging"`
}

// SearchConfig bounds a single puzzle run.
type SearchConfig struct {
	Workers       int    `yaml:"workers"`        // 0 means one per CPU
	MaxExpansions int    `yaml:"max_expansions"` // 0 means unlimited
	Timeout       string `yaml:"timeout"`
}

// DefaultConfig returns the settings used when no file is present.
func DefaultConfig() *Config {
	return &Config{
		Search: SearchConfig{
			Timeout: "5m",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load loads configuration from a YAML file. A missing file yields the defaults.
// Environment overrides are applied either way.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save saves configuration to a YAML file.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if level := os.Getenv("ASTAR_LOG_LEVEL"); level != "" {
		c.Logging.Level = level
	}
	if workers := os.Getenv("ASTAR_WORKERS"); workers != "" {
		n, err := strconv.Atoi(workers)
		if err != nil {
			return fmt.Errorf("invalid ASTAR_WORKERS %q: %w", workers, err)
		}
		c.Search.Workers = n
	}
	if limit := os.Getenv("ASTAR_MAX_EXPANSIONS"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil {
			return fmt.Errorf("invalid ASTAR_MAX_EXPANSIONS %q: %w", limit, err)
		}
		c.Search.MaxExpansions = n
	}
	if timeout := os.Getenv("ASTAR_TIMEOUT"); timeout != "" {
		c.Search.Timeout = timeout
	}
	return nil
}

// GetTimeout returns the search timeout as a duration.
func (c *Config) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Search.Timeout)
	if err != nil || d <= 0 {
		return 5 * time.Minute
	}
	return d
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Search.Workers < 0 {
		return fmt.Errorf("search.workers must not be negative: %d", c.Search.Workers)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("search.max_expansions must not be negative: %d", c.Search.MaxExpansions)
	}
	if _, err := time.ParseDuration(c.Search.Timeout); c.Search.Timeout != "" && err != nil {
		return fmt.Errorf("invalid search.timeout: %w", err)
	}
	return c.Logging.Validate()
}
