package logger

import (
	"context"
	"log/slog"
)

type contextKey string

const (
	// RequestIDKey carries the request id set by the request-id middleware.
	RequestIDKey contextKey = "request_id"
)

// WithRequestID stores a request id on the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// RequestIDFromContext returns the request id, or "" when absent.
func RequestIDFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(RequestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithContext returns the logger enriched with fields extracted from ctx.
func WithContext(ctx context.Context, log *slog.Logger) *slog.Logger {
	if requestID := RequestIDFromContext(ctx); requestID != "" {
		return log.With("request_id", requestID)
	}
	return log
}
