// Package logger configures structured logging for the CLI.
package logger

import (
	"io"
	"log/slog"
	"strings"
)

// ParseLevel maps a configured level name to a slog level (case-insensitive).
// Unknown names fall back to warn, which keeps normal play quiet.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(name) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelWarn, false
	}
}

// Setup creates a text logger writing to w at the given level and installs
// it as the default logger.
func Setup(level string, w io.Writer) *slog.Logger {
	lvl, ok := ParseLevel(level)

	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler)
	slog.SetDefault(logger)

	if !ok {
		logger.Warn("invalid log level configured, using default level",
			"configured_level", level,
			"default_level", "warn")
	}

	return logger
}
