package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer) *Logger {
	return New(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
}

func TestNew_Nil(t *testing.T) {
	l := New(nil)
	require.NotNil(t, l)
	require.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestLogWrite(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf).WithPath("/tmp/a.soa")

	l.LogWrite(context.Background(), "x", 4, 4, nil)
	require.Contains(t, buf.String(), "section written")
	require.Contains(t, buf.String(), "section=x")
	require.Contains(t, buf.String(), "path=/tmp/a.soa")

	buf.Reset()
	l.LogWrite(context.Background(), "y", 4, 2, errors.New("disk full"))
	require.Contains(t, buf.String(), "level=ERROR")
	require.Contains(t, buf.String(), "written=2")
	require.Contains(t, buf.String(), "disk full")
}

func TestLogRead(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf)

	l.LogRead(context.Background(), "ring_length", 3, nil)
	require.Contains(t, buf.String(), "count=3")

	buf.Reset()
	l.LogRead(context.Background(), "ring_length", 0, errors.New("truncated"))
	require.Contains(t, buf.String(), "section read failed")
}

func TestLogRejected(t *testing.T) {
	var buf bytes.Buffer
	newBufferLogger(&buf).LogRejected(context.Background(), errors.New("bad sums"))
	require.Contains(t, buf.String(), "level=WARN")
	require.Contains(t, buf.String(), "bad sums")
}

func TestConstructors(t *testing.T) {
	require.NotNil(t, NewText(slog.LevelInfo))
	require.NotNil(t, NewJSON(slog.LevelInfo))
	require.False(t, Noop().Enabled(context.Background(), slog.LevelError))
}

func TestWithBlob(t *testing.T) {
	var buf bytes.Buffer
	newBufferLogger(&buf).WithBlob("geo/poly.soa").LogRead(context.Background(), "x", 4, nil)
	require.Contains(t, buf.String(), "blob=geo/poly.soa")
}
