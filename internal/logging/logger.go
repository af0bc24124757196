// Package logging wraps log/slog with the field names used across the soa codecs.
package logging

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with codec-specific helpers.
type Logger struct {
	*slog.Logger
}

// New creates a Logger from an existing slog.Logger.
// A nil logger yields a Logger that discards everything.
func New(l *slog.Logger) *Logger {
	if l == nil {
		return Noop()
	}

	return &Logger{Logger: l}
}

// NewText creates a Logger that writes human-readable text logs to stderr.
func NewText(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{Logger: slog.New(handler)}
}

// NewJSON creates a Logger that writes JSON logs to stderr.
func NewJSON(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	return &Logger{Logger: slog.New(handler)}
}

// Noop creates a Logger that discards all output.
func Noop() *Logger {
	return &Logger{Logger: slog.New(slog.DiscardHandler)}
}

// WithPath adds a path field.
func (l *Logger) WithPath(path string) *Logger {
	return &Logger{Logger: l.Logger.With("path", path)}
}

// LogWrite logs the outcome of writing one section.
func (l *Logger) LogWrite(ctx context.Context, name string, count, written int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "section write failed",
			"section", name,
			"count", count,
			"written", written,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "section written",
		"section", name,
		"count", count,
	)
}

// LogRead logs the outcome of reading one section.
func (l *Logger) LogRead(ctx context.Context, name string, count int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "section read failed",
			"section", name,
			"error", err,
		)

		return
	}

	l.DebugContext(ctx, "section read",
		"section", name,
		"count", count,
	)
}

// LogRejected logs a write refused before any byte was written.
func (l *Logger) LogRejected(ctx context.Context, reason error) {
	l.WarnContext(ctx, "write rejected", "error", reason)
}

// WithBlob adds a blob name field.
func (l *Logger) WithBlob(name string) *Logger {
	return &Logger{Logger: l.Logger.With("blob", name)}
}
