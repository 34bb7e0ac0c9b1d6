package logger_test

import (
	"testing"

	"github.com/gunnargantzel/NMS-sub000/internal/config"
	"github.com/gunnargantzel/NMS-sub000/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, logger.ParseLevel("debug"))
	assert.Equal(t, zapcore.WarnLevel, logger.ParseLevel("warn"))
	assert.Equal(t, zapcore.InfoLevel, logger.ParseLevel("verbose"))
}

func TestNewLogger(t *testing.T) {
	log, err := logger.NewLogger(
		&config.LoggingConfig{Level: "warn", Format: "json"},
		&config.AppConfig{Name: "nms", Environment: "test"},
	)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
}
