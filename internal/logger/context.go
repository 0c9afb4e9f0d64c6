// Package logger provides structured logging utilities for slackbridge.
// It includes context-aware logging and log level management.
package logger

import (
	"context"
	"log/slog"
	"time"

	"github.com/slackbridge/slackbridge/internal/constants"
)

type contextKey string

const (
	requestIDContextKey contextKey = "requestID"
)

// ContextExtractor pulls a request ID out of a provider-specific context,
// e.g. the Lambda context injected by the runtime.
type ContextExtractor interface {
	ExtractRequestID(ctx context.Context) (string, bool)
}

var contextExtractors []ContextExtractor

// RegisterContextExtractor adds an extractor consulted by DeriveRequestLogger
// when the context carries no explicit request ID.
func RegisterContextExtractor(extractor ContextExtractor) {
	contextExtractors = append(contextExtractors, extractor)
}

// ClearContextExtractors removes all registered extractors.
func ClearContextExtractors() {
	contextExtractors = nil
}

// WithRequestID returns a copy of ctx carrying the given request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// GetRequestID extracts the request ID from the context.
// The request ID is set by server middleware when available.
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(requestIDContextKey).(string); ok {
		return requestID
	}

	return ""
}

// DeriveRequestLogger returns a logger enriched with request-scoped fields
// available in the provided context.
func DeriveRequestLogger(ctx context.Context, base *slog.Logger) *slog.Logger {
	if base == nil {
		return slog.Default()
	}

	if requestID := GetRequestID(ctx); requestID != "" {
		return base.With(constants.RequestIDLogField, requestID)
	}

	for _, extractor := range contextExtractors {
		if requestID, ok := extractor.ExtractRequestID(ctx); ok && requestID != "" {
			return base.With(constants.RequestIDLogField, requestID)
		}
	}

	return base
}

// GetDeadlineInfo returns logging attributes for context deadline information.
// Returns the absolute deadline time and remaining duration if set, or "none" if no deadline.
func GetDeadlineInfo(ctx context.Context) []any {
	deadline, ok := ctx.Deadline()
	if !ok {
		return []any{"deadline", "none", "deadline_remaining", "none"}
	}

	remaining := time.Until(deadline)
	return []any{
		"deadline", deadline.Format(time.RFC3339),
		"deadline_remaining", remaining.String(),
	}
}
