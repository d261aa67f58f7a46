package game_test

import (
	"flag"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := game.LoadConfig(newFlagSet(), nil)
		require.NoError(t, err)
		assert.Equal(t, game.DefaultConfig(), cfg)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("BLOCKFALL_WIDTH", "12")
		t.Setenv("BLOCKFALL_TICK", "250ms")
		t.Setenv("BLOCKFALL_SEED", "7")
		t.Setenv("BLOCKFALL_LOG_LEVEL", "debug")

		cfg, err := game.LoadConfig(newFlagSet(), nil)
		require.NoError(t, err)
		assert.Equal(t, 12, cfg.Width)
		assert.Equal(t, 20, cfg.Height)
		assert.Equal(t, 250*time.Millisecond, cfg.Tick)
		assert.Equal(t, uint64(7), cfg.Seed)
		assert.Equal(t, "debug", cfg.LogLevel)
	})

	t.Run("flags override environment", func(t *testing.T) {
		t.Setenv("BLOCKFALL_WIDTH", "12")
		t.Setenv("BLOCKFALL_HEIGHT", "30")

		cfg, err := game.LoadConfig(newFlagSet(), []string{"-width", "8", "-tick", "1s"})
		require.NoError(t, err)
		assert.Equal(t, 8, cfg.Width)
		assert.Equal(t, 30, cfg.Height)
		assert.Equal(t, time.Second, cfg.Tick)
	})

	t.Run("frontend flags share the set", func(t *testing.T) {
		fs := newFlagSet()
		debug := fs.Bool("debug", false, "")

		_, err := game.LoadConfig(fs, []string{"-debug"})
		require.NoError(t, err)
		assert.True(t, *debug)
	})

	t.Run("bad environment value", func(t *testing.T) {
		t.Setenv("BLOCKFALL_WIDTH", "wide")

		_, err := game.LoadConfig(newFlagSet(), nil)
		assert.ErrorContains(t, err, "parse env")
	})

	t.Run("invalid result", func(t *testing.T) {
		_, err := game.LoadConfig(newFlagSet(), []string{"-height", "0"})
		assert.ErrorIs(t, err, game.ErrInvalidConfig)
	})

	t.Run("unknown flag", func(t *testing.T) {
		_, err := game.LoadConfig(newFlagSet(), []string{"-nope"})
		assert.Error(t, err)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*game.Config)
		valid  bool
	}{
		{"defaults", func(*game.Config) {}, true},
		{"zero width", func(c *game.Config) { c.Width = 0 }, false},
		{"negative height", func(c *game.Config) { c.Height = -1 }, false},
		{"zero tick", func(c *game.Config) { c.Tick = 0 }, false},
		{"zero cell size", func(c *game.Config) { c.CellSize = 0 }, false},
		{"unknown log level", func(c *game.Config) { c.LogLevel = "loud" }, false},
		{"file logging", func(c *game.Config) { c.LogFile = filepath.Join(t.TempDir(), "x.log") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := game.DefaultConfig()
			tt.modify(&cfg)

			err := cfg.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, game.ErrInvalidConfig)
			}
		})
	}
}
