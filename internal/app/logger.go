package app

import (
	"io"
	"log/slog"
	"strings"
)

// defaultLogLevel keeps stderr quiet unless something needs attention.
const defaultLogLevel = slog.LevelWarn

// parseLogLevel maps a level name to its slog level. Unknown or empty names
// fall back to defaultLogLevel.
func parseLogLevel(name string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(name))); err != nil || name == "" {
		return defaultLogLevel
	}
	return level
}

// newLogger builds the logger for one run. Logs go to logW, never to the
// writer carrying answers. The global logger is left untouched.
func newLogger(levelName, format string, logW io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(levelName)}

	var handler slog.Handler = slog.NewTextHandler(logW, opts)
	if format == "json" {
		handler = slog.NewJSONHandler(logW, opts)
	}
	return slog.New(handler).With("app", "daypack")
}
