package game_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/plus3/blockfall/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("level", func(t *testing.T) {
		cfg := game.DefaultConfig()
		cfg.LogLevel = "warn"

		logger, err := game.NewLogger(cfg)
		require.NoError(t, err)
		assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("file output", func(t *testing.T) {
		cfg := game.DefaultConfig()
		cfg.LogFile = filepath.Join(t.TempDir(), "blockfall.log")

		logger, err := game.NewLogger(cfg)
		require.NoError(t, err)
		logger.Info("hello")
		_ = logger.Sync()

		data, err := os.ReadFile(cfg.LogFile)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"msg":"hello"`)
	})

	t.Run("bad level", func(t *testing.T) {
		cfg := game.DefaultConfig()
		cfg.LogLevel = "loud"

		_, err := game.NewLogger(cfg)
		assert.Error(t, err)
	})
}
