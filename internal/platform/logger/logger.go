package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/biztime-api/internal/config"
)

// Setup initializes the application's logging system based on the provided
// configuration. It creates a structured JSON logger writing to stdout with
// the configured level and sets it as the default logger.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	logger := New(os.Stdout, cfg.LogLevel)

	// Set this logger as the default for the application
	slog.SetDefault(logger)

	return logger, nil
}

// New creates a JSON logger writing to w at the given level.
// Unknown levels fall back to info, and a warning is written to w.
func New(w io.Writer, levelName string) *slog.Logger {
	level, ok := ParseLevel(levelName)

	logger := slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	if !ok {
		logger.Warn("invalid log level configured, using default level",
			slog.String("configured_level", levelName),
			slog.String("default_level", "info"))
	}

	return logger
}

// ParseLevel converts a case-insensitive level name into a slog.Level.
// The boolean is false when the name is not recognized, in which case
// slog.LevelInfo is returned.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}
