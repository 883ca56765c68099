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

	"github.com/estately-inc/estately/internal/shared/config"
)

func TestLevelSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		levels     []slog.Level
		wantSource bool
	}{
		{"info without source", slog.LevelInfo, []slog.Level{slog.LevelWarn, slog.LevelError}, false},
		{"warn with source", slog.LevelWarn, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"error with source", slog.LevelError, []slog.Level{slog.LevelWarn, slog.LevelError}, true},
		{"info when all levels enabled", slog.LevelInfo, []slog.Level{slog.LevelDebug, slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			log := slog.New(NewLevelSourceHandler(slog.NewTextHandler(&buf, nil), tt.levels...))

			log.Log(context.Background(), tt.level, "listing query")

			assert.Equal(t, tt.wantSource, bytes.Contains(buf.Bytes(), []byte("source=")), buf.String())
		})
	}
}

func TestLevelSourceHandler_KeepsAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewLevelSourceHandler(slog.NewTextHandler(&buf, nil), slog.LevelError)).
		With("component", "listing").
		WithGroup("request")

	log.Info("served", "path", "/api/v1/listings")

	out := buf.String()
	assert.Contains(t, out, "component=listing")
	assert.Contains(t, out, "request.path=/api/v1/listings")
	assert.NotContains(t, out, "source=")
}

func TestInit_JSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	err := Init(&config.LoggerConfig{Level: "warn", Format: "json", OutputPath: path}, "release")
	require.NoError(t, err)
	t.Cleanup(func() { Logger = nil })

	NewLogger().Infow("hidden")
	NewLogger().Warnw("slug collision", "slug", "sunny-villa")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), `"slug":"sunny-villa"`)
}

func TestNewNop(t *testing.T) {
	log := NewNop()
	assert.NotPanics(t, func() {
		log.Errorw("ignored", "error", assert.AnError)
		log.With("k", "v").Named("x").Info("ignored")
	})
}
