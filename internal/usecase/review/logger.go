package review

import "context"

// Logger provides structured logging for the pipeline use case. The
// orchestrator logs stage transitions and swallowed publishing failures
// through this interface.
type Logger interface {
	// LogWarning logs a warning message with structured fields.
	LogWarning(ctx context.Context, message string, fields map[string]interface{})

	// LogInfo logs an informational message with structured fields.
	LogInfo(ctx context.Context, message string, fields map[string]interface{})
}
