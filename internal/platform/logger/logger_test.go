package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/biztime-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
		ok       bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{" warn ", slog.LevelWarn, true},
		{"warning", slog.LevelWarn, true},
		{"Error", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, ok := logger.ParseLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestNew_WritesJSONAtConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "warn")

	log.Info("hidden")
	log.Warn("visible", slog.String("company_code", "apple"))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "apple", entry["company_code"])
}

func TestNew_InvalidLevelWarns(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(&buf, "chatty")

	assert.Contains(t, buf.String(), "invalid log level configured")
	assert.True(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, log.Enabled(context.Background(), slog.LevelDebug))
}

func TestContextHelpers(t *testing.T) {
	var buf bytes.Buffer
	custom := logger.New(&buf, "debug")
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	t.Run("stored logger is returned", func(t *testing.T) {
		ctx := logger.WithLogger(context.Background(), custom)
		assert.Same(t, custom, logger.FromContext(ctx))
		assert.Same(t, custom, logger.FromContextOrDefault(ctx, fallback))
	})

	t.Run("fallback used when context is empty", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("default used when fallback is nil", func(t *testing.T) {
		assert.Same(t, slog.Default(), logger.FromContextOrDefault(context.Background(), nil))
		assert.Same(t, slog.Default(), logger.FromContext(context.Background()))
	})
}
