// Package game hosts an engine for a frontend: configuration, logging, the
// session lifecycle and the systems that feed the engine every frame.
package game

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds session configuration shared by every frontend.
type Config struct {
	Width    int           `env:"BLOCKFALL_WIDTH"      envDefault:"10"`
	Height   int           `env:"BLOCKFALL_HEIGHT"     envDefault:"20"`
	Tick     time.Duration `env:"BLOCKFALL_TICK"       envDefault:"500ms"`
	Seed     uint64        `env:"BLOCKFALL_SEED"`
	CellSize int           `env:"BLOCKFALL_CELL_SIZE"  envDefault:"30"`
	LogLevel string        `env:"BLOCKFALL_LOG_LEVEL"  envDefault:"info"`
	LogFile  string        `env:"BLOCKFALL_LOG_FILE"`
}

// DefaultConfig returns the environment-free defaults.
func DefaultConfig() Config {
	return Config{
		Width:    10,
		Height:   20,
		Tick:     500 * time.Millisecond,
		CellSize: 30,
		LogLevel: "info",
	}
}

// LoadConfig reads the environment, then lets flags in args override it.
// Frontends may register their own flags on fs before calling.
func LoadConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	fs.IntVar(&cfg.Width, "width", cfg.Width, "board width in cells")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "board height in cells")
	fs.DurationVar(&cfg.Tick, "tick", cfg.Tick, "gravity interval")
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "piece sequence seed (0 picks one at random)")
	fs.IntVar(&cfg.CellSize, "cell-size", cfg.CellSize, "cell size in pixels")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "write logs to this file instead of stderr")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first unusable setting.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: board %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.Tick <= 0:
		return fmt.Errorf("%w: tick %s", ErrInvalidConfig, c.Tick)
	case c.CellSize <= 0:
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}
