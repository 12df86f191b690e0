package log

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"trace", LevelTrace},
		{"DEBUG", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"bogus", slog.LevelInfo},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.in), tt.in)
	}
}

func TestSetupLoggerSplitsStreams(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, closers, err := setupLogger("trace", "", &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Log(testContext(t), LevelTrace, "native record")
	logger.Info("listening")
	logger.Error("tap disabled")

	assert.Contains(t, stdout.String(), "level=TRACE")
	assert.Contains(t, stdout.String(), "listening")
	assert.NotContains(t, stdout.String(), "tap disabled")
	assert.Contains(t, stderr.String(), "tap disabled")
	assert.NotContains(t, stderr.String(), "listening")
}

func TestSetupLoggerFiltersLevel(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, _, err := setupLogger("info", "", &stdout, &stderr)
	require.NoError(t, err)

	logger.Debug("hidden")
	assert.Empty(t, stdout.String())
}

func TestRawLogger(t *testing.T) {
	var buf bytes.Buffer
	r := &rawLogger{w: &buf, now: func() time.Time {
		return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	}}

	r.Trace("evdev:/dev/input/event3", 1, 30, 1)
	r.Trace("empty")

	assert.Equal(t, "2024/01/02 03:04:05.000 evdev:/dev/input/event3 record: 3 words, hex: 1 1e 1\n", buf.String())
}

func TestRawLoggerNilWriter(t *testing.T) {
	assert.NotPanics(t, func() { NewRaw(nil).Trace("quartz", 1, 2) })
}

// testContext stands in for t.Context (Go 1.24+): the context is canceled
// when the test finishes.
func testContext(t testing.TB) context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}
