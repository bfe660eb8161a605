package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

type loggerKey struct{}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithFields returns a copy of ctx whose logger adds keyvals to every entry.
// The logger is derived from FromContext(ctx).
func WithFields(ctx context.Context, keyvals ...any) context.Context {
	return WithLogger(ctx, FromContext(ctx).With(keyvals...))
}

// FromContext returns the logger carried by ctx, or Default().
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey{}).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
