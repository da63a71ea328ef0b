package observability

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/docreview/readme-review/internal/adapter/httpx"
	"github.com/docreview/readme-review/internal/usecase/review"
)

// PipelineLogger implements review.Logger on top of the same level/format
// configuration the HTTP clients use, so stage logs and API logs share one
// output convention.
type PipelineLogger struct {
	level  httpx.LogLevel
	format httpx.LogFormat
}

// NewPipelineLogger creates a new pipeline logger adapter.
func NewPipelineLogger(level httpx.LogLevel, format httpx.LogFormat) review.Logger {
	return &PipelineLogger{level: level, format: format}
}

// LogInfo logs an informational message with structured fields.
func (l *PipelineLogger) LogInfo(ctx context.Context, message string, fields map[string]interface{}) {
	if l.level > httpx.LogLevelInfo {
		return
	}
	l.emit("info", "[INFO]", message, fields)
}

// LogWarning logs a warning message with structured fields. Warnings are
// emitted at every level; a swallowed publishing failure must always leave
// a trace in the log.
func (l *PipelineLogger) LogWarning(ctx context.Context, message string, fields map[string]interface{}) {
	l.emit("warning", "[WARN]", message, fields)
}

func (l *PipelineLogger) emit(jsonLevel, humanPrefix, message string, fields map[string]interface{}) {
	if l.format == httpx.LogFormatJSON {
		// json.Marshal sorts map keys, keeping output deterministic.
		encoded, err := json.Marshal(fields)
		if err != nil {
			encoded = []byte("{}")
		}
		log.Printf(`{"level":"%s","message":"%s","timestamp":"%s","fields":%s}`,
			jsonLevel, message, time.Now().Format(time.RFC3339), encoded)
		return
	}

	if len(fields) == 0 {
		log.Printf("%s %s", humanPrefix, message)
		return
	}
	encoded, err := json.Marshal(fields)
	if err != nil {
		log.Printf("%s %s", humanPrefix, message)
		return
	}
	log.Printf("%s %s %s", humanPrefix, message, encoded)
}
