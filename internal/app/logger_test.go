package app

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel(""))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("loud"))
}

func TestNewLogger_JSONFormat(t *testing.T) {
	// --- Arrange ---
	buf := &bytes.Buffer{}
	logger := newLogger("info", "json", buf)

	// --- Act ---
	logger.Debug("hidden")
	logger.Info("visible", "pack", "aoc23")

	// --- Assert ---
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "aoc23", entry["pack"])
	assert.Equal(t, "daypack", entry["app"])
}
