package logger

import (
	"context"
	"log/slog"
)

type contextKey struct{}

// With stores a child logger carrying the given fields in the context.
func With(ctx context.Context, fields ...any) context.Context {
	return context.WithValue(ctx, contextKey{}, From(ctx).With(fields...))
}

// From retrieves the logger from the context, falling back to the
// process logger when none was attached.
func From(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return l
	}
	return LoggerWrapper()
}
