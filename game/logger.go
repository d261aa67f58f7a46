package game

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the logger described by cfg: a console logger on stderr,
// or JSON lines appended to cfg.LogFile when set.
func NewLogger(cfg Config) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	var zcfg zap.Config
	if cfg.LogFile == "" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		zcfg.OutputPaths = []string{cfg.LogFile}
		zcfg.ErrorOutputPaths = []string{cfg.LogFile}
		zcfg.Sampling = nil
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)
	zcfg.DisableStacktrace = true

	logger, err := zcfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger, nil
}

func statsFields(stats engine.Stats) []zap.Field {
	return []zap.Field{
		zap.Int("ticks", stats.Ticks),
		zap.Int("spawned", stats.Spawned),
		zap.Int("locked", stats.Locked),
		zap.Int("rows_cleared", stats.RowsCleared),
		zap.Int("rejected", stats.Rejected),
	}
}
