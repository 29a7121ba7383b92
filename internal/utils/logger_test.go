package utils

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	t.Run("Parses valid level", func(t *testing.T) {
		logger := NewLogger(LoggerConfig{Level: "warn"})
		assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
	})

	t.Run("Falls back to info on invalid level", func(t *testing.T) {
		logger := NewLogger(LoggerConfig{Level: "shouting"})
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})

	t.Run("Writes to log file", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "logs", "app.log")

		logger := NewLogger(LoggerConfig{
			Level:   "info",
			LogFile: logFile,
		})
		logger.Info().Str("component", "test").Msg("hello from test")

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.True(t, strings.Contains(string(content), "hello from test"))
		assert.True(t, strings.Contains(string(content), "component"))
	})

	t.Run("Debug messages suppressed at info level", func(t *testing.T) {
		logFile := filepath.Join(t.TempDir(), "app.log")

		logger := NewLogger(LoggerConfig{
			Level:   "info",
			LogFile: logFile,
		})
		logger.Debug().Msg("should not appear")
		logger.Info().Msg("should appear")

		content, err := os.ReadFile(logFile)
		require.NoError(t, err)
		assert.False(t, strings.Contains(string(content), "should not appear"))
		assert.True(t, strings.Contains(string(content), "should appear"))
	})
}

func TestLoggerConfigs(t *testing.T) {
	t.Run("DefaultConfig", func(t *testing.T) {
		cfg := DefaultConfig()
		assert.Equal(t, "info", cfg.Level)
		assert.False(t, cfg.Pretty)
	})

	t.Run("DevelopmentConfig", func(t *testing.T) {
		cfg := DevelopmentConfig()
		assert.Equal(t, "debug", cfg.Level)
		assert.True(t, cfg.Pretty)
		assert.True(t, cfg.CallerInfo)
	})
}

func TestLoggerContext(t *testing.T) {
	logger := NewLogger(LoggerConfig{Level: "debug"})

	ctx := WithContext(context.Background(), logger)
	fromCtx := FromContext(ctx)

	require.NotNil(t, fromCtx)
	assert.Equal(t, zerolog.DebugLevel, fromCtx.GetLevel())
}
