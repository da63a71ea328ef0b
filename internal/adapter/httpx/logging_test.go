package httpx

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRedactURLSecrets(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"gemini key parameter",
			`Post "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent?key=AIzaSySECRET": dial tcp: timeout`,
			`Post "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.0-flash:generateContent?key=[REDACTED]": dial tcp: timeout`,
		},
		{
			"token parameter",
			"request to https://example.com/api?token=ghp_abc123 failed",
			"request to https://example.com/api?token=[REDACTED] failed",
		},
		{
			"multiple query parameters",
			"url?api_key=one&page=2",
			"url?api_key=[REDACTED]&page=2",
		},
		{
			"no secrets",
			"connection refused",
			"connection refused",
		},
		{
			"empty",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RedactURLSecrets(tt.in))
		})
	}
}

func TestTruncateForLogging_ShortResponse(t *testing.T) {
	text := "short review"

	assert.Equal(t, text, TruncateForLogging(text))
}

func TestTruncateForLogging_LongResponse(t *testing.T) {
	text := strings.Repeat("a", MaxLoggedResponseLength+50)

	truncated := TruncateForLogging(text)

	assert.True(t, strings.HasPrefix(truncated, strings.Repeat("a", MaxLoggedResponseLength)))
	assert.Contains(t, truncated, "truncated")
	assert.Contains(t, truncated, "250 bytes")
}

func TestRedactAPIKey(t *testing.T) {
	logger := NewDefaultLogger(LogLevelInfo, LogFormatHuman, true)

	assert.Equal(t, "[REDACTED-6789]", logger.RedactAPIKey("123456789"))
	assert.Equal(t, "[REDACTED]", logger.RedactAPIKey("abc"))
	assert.Equal(t, "[REDACTED]", logger.RedactAPIKey(""))
}

func TestRedactAPIKey_Disabled(t *testing.T) {
	logger := NewDefaultLogger(LogLevelInfo, LogFormatHuman, false)

	assert.Equal(t, "plaintext-key", logger.RedactAPIKey("plaintext-key"))
}
