package observability

import (
	"bytes"
	"context"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docreview/readme-review/internal/adapter/httpx"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	original := log.Writer()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(original) })
	return &buf
}

func TestLogInfo_HumanFormat(t *testing.T) {
	buf := captureLog(t)
	logger := NewPipelineLogger(httpx.LogLevelInfo, httpx.LogFormatHuman)

	logger.LogInfo(context.Background(), "change detection complete", map[string]interface{}{
		"pr":    42,
		"state": "matched",
	})

	out := buf.String()
	assert.Contains(t, out, "[INFO]")
	assert.Contains(t, out, "change detection complete")
	assert.Contains(t, out, `"pr":42`)
	assert.Contains(t, out, `"state":"matched"`)
}

func TestLogInfo_SuppressedAboveInfoLevel(t *testing.T) {
	buf := captureLog(t)
	logger := NewPipelineLogger(httpx.LogLevelError, httpx.LogFormatHuman)

	logger.LogInfo(context.Background(), "noise", nil)

	assert.Empty(t, buf.String())
}

func TestLogWarning_EmittedAtEveryLevel(t *testing.T) {
	buf := captureLog(t)
	logger := NewPipelineLogger(httpx.LogLevelError, httpx.LogFormatHuman)

	logger.LogWarning(context.Background(), "failed to post review comment", map[string]interface{}{
		"pr": 42,
	})

	out := buf.String()
	assert.Contains(t, out, "[WARN]")
	assert.Contains(t, out, "failed to post review comment")
}

func TestLogWarning_JSONFormat(t *testing.T) {
	buf := captureLog(t)
	logger := NewPipelineLogger(httpx.LogLevelInfo, httpx.LogFormatJSON)

	logger.LogWarning(context.Background(), "failed to post review comment", map[string]interface{}{
		"error": "github: service unavailable",
	})

	out := buf.String()
	assert.Contains(t, out, `"level":"warning"`)
	assert.Contains(t, out, `"message":"failed to post review comment"`)
	assert.Contains(t, out, `"error":"github: service unavailable"`)
}

func TestLogInfo_HumanFormat_NoFields(t *testing.T) {
	buf := captureLog(t)
	logger := NewPipelineLogger(httpx.LogLevelDebug, httpx.LogFormatHuman)

	logger.LogInfo(context.Background(), "starting", nil)

	out := buf.String()
	assert.Contains(t, out, "[INFO] starting")
	assert.NotContains(t, out, "{")
}
