package observability

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{}

var loggerContextKey = contextKey{}

// LoggerFromContext extracts a Logger from the context.
// Returns a NopLogger if no logger is present, so the result is always usable.
func LoggerFromContext(ctx context.Context) Logger {
	if ctx == nil {
		return NopLogger{}
	}
	if logger, ok := ctx.Value(loggerContextKey).(Logger); ok {
		return logger
	}
	return NopLogger{}
}

// ContextWithLogger returns a new context with the given logger attached.
func ContextWithLogger(ctx context.Context, logger Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerContextKey, logger)
}
