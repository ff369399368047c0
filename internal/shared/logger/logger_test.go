package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ticketdesk/internal/shared/config"
)

func TestSourceHandler(t *testing.T) {
	tests := []struct {
		name       string
		level      slog.Level
		sourceFrom slog.Level
		wantSource bool
	}{
		{"info below warn threshold", slog.LevelInfo, slog.LevelWarn, false},
		{"warn at threshold", slog.LevelWarn, slog.LevelWarn, true},
		{"error above threshold", slog.LevelError, slog.LevelWarn, true},
		{"debug threshold covers info", slog.LevelInfo, slog.LevelDebug, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
			log := slog.New(NewSourceHandler(base, tt.sourceFrom))

			log.Log(context.Background(), tt.level, "message")

			var record map[string]any
			require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
			_, hasSource := record[slog.SourceKey]
			assert.Equal(t, tt.wantSource, hasSource)
		})
	}
}

func TestSourceHandler_WithAttrsKeepsThreshold(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, nil)
	log := slog.New(NewSourceHandler(base, slog.LevelError)).With("component", "executor")

	log.Warn("not yet")
	assert.NotContains(t, buf.String(), `"source"`)
	assert.Contains(t, buf.String(), `"component":"executor"`)

	buf.Reset()
	log.Error("now")
	assert.Contains(t, buf.String(), `"source"`)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestInit_JSONToFile(t *testing.T) {
	prev := Logger
	t.Cleanup(func() {
		Logger = prev
		slog.SetDefault(Get())
	})

	path := filepath.Join(t.TempDir(), "app.log")
	err := Init(&config.LoggerConfig{Level: "warn", Format: "json", OutputPath: path}, false)
	require.NoError(t, err)

	Info("dropped")
	NewLogger().Named("executor").Warnw("kept", "ticket_id", "abc")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, "executor", record["logger"])
	assert.Equal(t, "abc", record["ticket_id"])
}
