package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, &Config{Level: "info", ServiceName: "video-digest"})

	log.Info("digest ready", "video_id", "dQw4w9WgXcQ")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))

	assert.Equal(t, "info", record["level"])
	assert.Equal(t, "digest ready", record["msg"])
	assert.Equal(t, "video-digest", record["service"])
	assert.Equal(t, "dQw4w9WgXcQ", record["video_id"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, &Config{Level: "error", ServiceName: "video-digest"})

	log.Info("should be dropped")
	assert.Zero(t, buf.Len())

	log.Error("should be written")
	assert.NotZero(t, buf.Len())
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
		"":        slog.LevelInfo,
	}

	for input, want := range tests {
		assert.Equal(t, want, parseLevel(input), "level %q", input)
	}
}

func TestRequestIDContext(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, RequestIDFromContext(ctx))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
}

func TestWithContext_AddsRequestID(t *testing.T) {
	var buf bytes.Buffer
	base := NewWithWriter(&buf, &Config{Level: "info", ServiceName: "video-digest"})

	ctx := WithRequestID(context.Background(), "req-456")
	WithContext(ctx, base).Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "req-456", record["request_id"])
}
