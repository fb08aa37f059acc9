package logging

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// contextKey is a type for context keys used by this package.
type contextKey int

const (
	instanceIDKey contextKey = iota
)

// GenerateInstanceID creates a new unique id for one running widget instance.
func GenerateInstanceID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// WithInstanceID returns a new context with the given instance ID.
func WithInstanceID(ctx context.Context, instanceID string) context.Context {
	return context.WithValue(ctx, instanceIDKey, instanceID)
}

// NewInstanceContext creates a new context carrying a generated instance ID.
func NewInstanceContext(parent context.Context) context.Context {
	if parent == nil {
		parent = context.Background()
	}
	return WithInstanceID(parent, GenerateInstanceID())
}

// InstanceIDFromContext extracts the instance ID from the context.
// Returns empty string if no instance ID is set.
func InstanceIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if id, ok := ctx.Value(instanceIDKey).(string); ok {
		return id
	}
	return ""
}

// LoggerFromContext returns a logger tagged with the instance ID from ctx.
// If no instance ID is in the context, returns the default logger.
func LoggerFromContext(ctx context.Context) *slog.Logger {
	logger := Logger()
	if id := InstanceIDFromContext(ctx); id != "" {
		logger = logger.With(KeyInstance, id)
	}
	return logger
}
