package xlog

import (
	"context"
)

// C is a short alias of the FromContext function.
var C = FromContext

type contextKey struct{}

// FromContext gets the Logger from the context, falling back to the
// default logger when none is attached.
func FromContext(ctx context.Context) *Logger {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, ok := ctx.Value(contextKey{}).(*Logger)
	if !ok {
		logger = Default()
	}
	return logger
}

// WithContext attaches the context logger extended with args to a new
// child context.
func WithContext(ctx context.Context, args ...any) context.Context {
	logger := FromContext(ctx)
	return context.WithValue(ctx, contextKey{}, logger.With(args...))
}
