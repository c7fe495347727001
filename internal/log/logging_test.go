package log

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"trace":   LevelTrace,
		"debug":   slog.LevelDebug,
		"":        slog.LevelInfo,
		"info":    slog.LevelInfo,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), "ParseLevel(%q)", in)
	}
}

func TestLevelNameRoundTrip(t *testing.T) {
	for _, name := range []string{"trace", "debug", "info", "warn", "error"} {
		assert.Equal(t, name, LevelName(ParseLevel(name)))
	}
}

func TestSetupConsoleSplitsErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, closers, err := setup(slog.LevelInfo, "", &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, closers)

	logger.Debug("hidden")
	logger.Info("hello")
	logger.Error("boom")

	assert.NotContains(t, stdout.String(), "hidden")
	assert.Contains(t, stdout.String(), "hello")
	assert.NotContains(t, stdout.String(), "boom")
	assert.Contains(t, stderr.String(), "boom")
	assert.NotContains(t, stderr.String(), "hello")
}

func TestSetupTraceLevelName(t *testing.T) {
	var stdout, stderr bytes.Buffer
	logger, _, err := setup(LevelTrace, "", &stdout, &stderr)
	require.NoError(t, err)

	logger.Log(t.Context(), LevelTrace, "dispatch")
	assert.Contains(t, stdout.String(), "level=TRACE")
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scm.log")
	var stdout, stderr bytes.Buffer

	logger, closers, err := setup(slog.LevelDebug, path, &stdout, &stderr)
	require.NoError(t, err)
	require.Len(t, closers, 1)

	logger.Debug("to file")
	require.NoError(t, closers[0].Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "to file"))
	assert.Contains(t, stderr.String(), "to file")
	assert.Empty(t, stdout.String())
}

func TestLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	h := NewLevelFilter(func(l slog.Level) bool { return l == slog.LevelWarn },
		slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: LevelTrace}))
	logger := slog.New(h)

	logger.Info("info")
	logger.Warn("warn")

	assert.NotContains(t, buf.String(), "info")
	assert.Contains(t, buf.String(), "warn")
}

func TestDiscard(t *testing.T) {
	logger := Discard()
	assert.False(t, logger.Enabled(t.Context(), slog.LevelError))
}
