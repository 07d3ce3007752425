package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
	assert.Equal(t, 5*time.Minute, cfg.GetTimeout())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "astar.yaml")
	cfg := DefaultConfig()
	cfg.Search.Workers = 3
	cfg.Search.MaxExpansions = 1000
	cfg.Search.Timeout = "30s"
	cfg.Logging.Format = "json"
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
	assert.Equal(t, 30*time.Second, loaded.GetTimeout())
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search:\n  workers: 2\n"), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Search.Workers)
	assert.Equal(t, "5m", cfg.Search.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadRejectsBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "astar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("search: [unterminated"), 0644))
	_, err := Load(path)
	require.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Run("all variables", func(t *testing.T) {
		t.Setenv("ASTAR_LOG_LEVEL", "debug")
		t.Setenv("ASTAR_WORKERS", "8")
		t.Setenv("ASTAR_MAX_EXPANSIONS", "50")
		t.Setenv("ASTAR_TIMEOUT", "2s")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logging.Level)
		assert.Equal(t, 8, cfg.Search.Workers)
		assert.Equal(t, 50, cfg.Search.MaxExpansions)
		assert.Equal(t, 2*time.Second, cfg.GetTimeout())
	})

	t.Run("bad number", func(t *testing.T) {
		t.Setenv("ASTAR_WORKERS", "many")
		_, err := Load("")
		require.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())

	for name, mutate := range map[string]func(*Config){
		"negative workers": func(c *Config) { c.Search.Workers = -1 },
		"negative budget":  func(c *Config) { c.Search.MaxExpansions = -1 },
		"bad timeout":      func(c *Config) { c.Search.Timeout = "soon" },
		"bad level":        func(c *Config) { c.Logging.Level = "loud" },
		"bad format":       func(c *Config) { c.Logging.Format = "xml" },
	} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			mutate(cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestBuildLogger(t *testing.T) {
	logging := LoggingConfig{Level: "warn", Format: "json"}
	logger, err := logging.Build(false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))

	verbose, err := logging.Build(true)
	require.NoError(t, err)
	assert.True(t, verbose.Core().Enabled(zapcore.DebugLevel))

	_, err = (&LoggingConfig{Level: "info", Format: "xml"}).Build(false)
	require.Error(t, err)
}
