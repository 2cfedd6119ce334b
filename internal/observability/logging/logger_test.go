package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-api/internal/handler/http/requestid"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"DEBUG":   slog.LevelDebug,
		" warn ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelInfo)

	logger.Debug("hidden")
	assert.Zero(t, buf.Len(), "debug must be filtered at info level")

	logger.Info("search served", slog.Int("hits", 3))
	entry := decodeLine(t, &buf)
	assert.Equal(t, "search served", entry["msg"])
	assert.Equal(t, "INFO", entry["level"])
	assert.EqualValues(t, 3, entry["hits"])
	assert.NotContains(t, entry, slog.SourceKey)
}

func TestNew_DebugAddsSource(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, FormatJSON, slog.LevelDebug).Debug("visible")

	entry := decodeLine(t, &buf)
	assert.Contains(t, entry, slog.SourceKey)
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, FormatText, slog.LevelInfo).Info("hello", slog.String("k", "v"))

	assert.Contains(t, buf.String(), "msg=hello")
	assert.Contains(t, buf.String(), "k=v")
}

func TestNewLogger_ReadsEnvironment(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("LOG_FORMAT", "")

	logger := NewLogger()
	ctx := context.Background()
	assert.False(t, logger.Enabled(ctx, slog.LevelWarn))
	assert.True(t, logger.Enabled(ctx, slog.LevelError))
}

func TestWithRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := New(&buf, FormatJSON, slog.LevelInfo)

	t.Run("adds id from context", func(t *testing.T) {
		buf.Reset()
		ctx := requestid.WithRequestID(context.Background(), "req-123")
		WithRequestID(ctx, base).Info("x")
		assert.Equal(t, "req-123", decodeLine(t, &buf)["request_id"])
	})

	t.Run("unchanged without id", func(t *testing.T) {
		buf.Reset()
		assert.Same(t, base, WithRequestID(context.Background(), base))
	})
}

func TestContextRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, FormatJSON, slog.LevelInfo)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}
