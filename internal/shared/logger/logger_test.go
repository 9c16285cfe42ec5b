package logger

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"forestdash/internal/shared/config"
)

func logAt(l *slog.Logger, level slog.Level) {
	l.Log(context.Background(), level, "range survey updated", "range_id", 3)
}

func TestConditionalSourceHandler(t *testing.T) {
	warnAndError := []slog.Level{slog.LevelWarn, slog.LevelError}
	all := []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError}

	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info is bare by default", slog.LevelInfo, warnAndError, false},
		{"warn carries source", slog.LevelWarn, warnAndError, true},
		{"error carries source", slog.LevelError, warnAndError, true},
		{"debug mode annotates info", slog.LevelInfo, all, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			logAt(slog.New(NewConditionalSourceHandler(base, tt.levels...)), tt.level)

			out := buf.String()
			assert.Contains(t, out, "range_id=3")
			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), out)
			if tt.wantSource {
				assert.Contains(t, out, "logger_test.go")
			}
		})
	}
}

func TestConditionalSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, nil)
	l := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).
		With("component", "dashboard").
		WithGroup("request")

	l.Info("stats computed", "path", "/api/dashboard-stats")

	out := buf.String()
	assert.Contains(t, out, "component=dashboard")
	assert.Contains(t, out, "request.path=/api/dashboard-stats")
	assert.NotContains(t, out, "source=")
}

func TestConditionalSourceHandler_DefersLevelToWrappedHandler(t *testing.T) {
	base := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelInfo})
	h := NewConditionalSourceHandler(base, slog.LevelError)

	assert.True(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.False(t, h.Enabled(context.Background(), slog.LevelDebug))
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}

	for name, want := range cases {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestInterface_WithAndNamedAddFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithSlog(slog.New(slog.NewTextHandler(&buf, nil)))

	l.Named("seeder").With("officers", 4).Infow("fixtures loaded", "ranges", 3)

	out := buf.String()
	assert.Contains(t, out, "logger=seeder")
	assert.Contains(t, out, "officers=4")
	assert.Contains(t, out, "ranges=3")
}

func TestInit_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "forestdash.log")
	require.NoError(t, Init(&config.LoggerConfig{Level: "warn", Format: "json", OutputPath: path}, "release"))
	t.Cleanup(func() { Logger = nil })

	NewLogger().Infow("hidden")
	NewLogger().Warnw("permit queue growing", "pending", 12)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"pending":12`)
	assert.Contains(t, string(data), `"source"`)
}
