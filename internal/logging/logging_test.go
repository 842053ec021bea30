package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	l := NewNop()

	// All levels accept arbitrary key-value pairs without panicking.
	l.Debug("debug", "k", 1)
	l.Info("info")
	l.Warn("warn", "err", "boom")
	l.Error("error", "partition", 3, "state", "Suspended")
}

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
	l := NewSlog(slog.New(handler))

	l.Debug("debug message", "partition", 1)
	l.Info("info message", "state", "Connected")
	l.Warn("warn message")
	l.Error("error message", "err", "boom")

	out := buf.String()
	require.Contains(t, out, "debug message")
	require.Contains(t, out, "info message")
	require.Contains(t, out, "warn message")
	require.Contains(t, out, "error message")
	require.Contains(t, out, "partition=1")
	require.Contains(t, out, "state=Connected")
}

func TestSlogDefault(t *testing.T) {
	require.NotNil(t, NewSlogDefault())
}
