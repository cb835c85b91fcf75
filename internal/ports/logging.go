package ports

import (
	"context"

	"github.com/google/uuid"
)

// Logger is the structured logging contract. Calls take key/value pairs and
// enrich entries with the correlation id found in the context. Common fields:
//   - correlation_id (one per CLI command or TUI session)
//   - layer (domain|application|infrastructure|presentation)
//   - component (session, renderer, exporter, loader, ...)
//   - row / rows / panel / chart_type for builder events
type Logger interface {
	Debug(ctx context.Context, msg string, fields ...interface{})
	Info(ctx context.Context, msg string, fields ...interface{})
	Warn(ctx context.Context, msg string, fields ...interface{})
	Error(ctx context.Context, msg string, fields ...interface{})
	With(fields ...interface{}) Logger
}

type correlationIDKey struct{}

// WithCorrelationID attaches the provided correlation ID to the context.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, id)
}

// GetCorrelationID extracts a correlation ID from context. It returns an empty
// string when none has been set.
func GetCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(correlationIDKey{}).(string); ok {
		return id
	}
	return ""
}

// GenerateCorrelationID produces a new UUIDv4 string for log correlation.
func GenerateCorrelationID() string {
	return uuid.NewString()
}
