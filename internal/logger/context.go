package logger

import (
	"context"
	"io"
)

type contextKey struct{}

// NewContext derives a context that carries logger from ctx.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the Logger ctx carries. It panics in case ctx carries
// no Logger.
func FromContext(ctx context.Context) *Logger {
	return ctx.Value(contextKey{}).(*Logger)
}

// MaybeFromContext returns the Logger ctx carries or nil.
func MaybeFromContext(ctx context.Context) *Logger {
	l, _ := ctx.Value(contextKey{}).(*Logger)
	return l
}

// Discard returns a Logger that drops everything.
func Discard() *Logger {
	return New(io.Discard, Error+1)
}
