package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLogger_JSONFormat(t *testing.T) {
	logger := InitLogger(LogConfig{Level: "debug", Format: "json"})
	require.NotNil(t, logger)
	assert.True(t, logger.Enabled(nil, slog.LevelDebug))
}

func TestInitLogger_DefaultsToInfo(t *testing.T) {
	logger := InitLogger(LogConfig{Level: "nonsense", Format: "text"})
	require.NotNil(t, logger)
	assert.False(t, logger.Enabled(nil, slog.LevelDebug))
	assert.True(t, logger.Enabled(nil, slog.LevelInfo))
}

func TestInitLogger_ServiceAttribute(t *testing.T) {
	logger := InitLogger(LogConfig{Service: "vahana", Level: "info", Format: "json"})
	require.NotNil(t, logger)
	// The service attribute must not change level handling.
	assert.True(t, logger.Enabled(nil, slog.LevelInfo))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("WARNING"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
}
