package logging

import (
	"context"

	"github.com/charmbracelet/log"
)

// contextKey keys the logger in a context. An unexported struct type
// cannot collide with keys from other packages.
type contextKey struct{}

//nolint:gochecknoglobals // Package-level context key is idiomatic
var loggerKey = contextKey{}

// WithLogger attaches the logger to the context. The fix command does
// this once so the runner and pipeline share the CLI's logger without
// threading it through every call.
func WithLogger(ctx context.Context, logger *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext returns the logger attached to the context, falling back
// to the package default when none is present.
func FromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return Default()
	}
	if logger, ok := ctx.Value(loggerKey).(*log.Logger); ok && logger != nil {
		return logger
	}
	return Default()
}
