package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge_OverlayWins(t *testing.T) {
	base := Config{
		Gemini: GeminiConfig{Model: "gemini-2.0-flash", APIKey: "base-key"},
		GitHub: GitHubConfig{Token: "base-token"},
		Git:    GitConfig{RepositoryDir: "."},
	}
	overlay := Config{
		Gemini: GeminiConfig{APIKey: "overlay-key"},
		GitHub: GitHubConfig{BaseURL: "https://ghe.example.com/api/v3"},
	}

	merged := Merge(base, overlay)

	assert.Equal(t, "gemini-2.0-flash", merged.Gemini.Model, "base survives when overlay is empty")
	assert.Equal(t, "overlay-key", merged.Gemini.APIKey)
	assert.Equal(t, "base-token", merged.GitHub.Token)
	assert.Equal(t, "https://ghe.example.com/api/v3", merged.GitHub.BaseURL)
	assert.Equal(t, ".", merged.Git.RepositoryDir)
}

func TestMerge_LaterOverlaysTakePriority(t *testing.T) {
	first := Config{Gemini: GeminiConfig{Model: "first"}}
	second := Config{Gemini: GeminiConfig{Model: "second"}}
	third := Config{Gemini: GeminiConfig{Model: "third"}}

	merged := Merge(first, second, third)

	assert.Equal(t, "third", merged.Gemini.Model)
}

func TestMerge_EmptyConfigsAreNoOps(t *testing.T) {
	base := Config{
		Review: ReviewConfig{Instructions: "focus on clarity"},
		Output: OutputConfig{WriteArtifact: true, Directory: "reports"},
	}

	merged := Merge(base, Config{})

	assert.Equal(t, "focus on clarity", merged.Review.Instructions)
	assert.True(t, merged.Output.WriteArtifact)
	assert.Equal(t, "reports", merged.Output.Directory)
}

func TestMerge_LoggingOverlay(t *testing.T) {
	base := Config{Observability: ObservabilityConfig{
		Logging: LoggingConfig{Enabled: true, Level: "info", Format: "auto", RedactAPIKeys: true},
	}}
	overlay := Config{Observability: ObservabilityConfig{
		Logging: LoggingConfig{Enabled: true, Level: "debug", Format: "json", RedactAPIKeys: true},
	}}

	merged := Merge(base, overlay)

	assert.Equal(t, "debug", merged.Observability.Logging.Level)
	assert.Equal(t, "json", merged.Observability.Logging.Format)
}

func TestMerge_HTTPTimeout(t *testing.T) {
	base := Config{HTTP: HTTPConfig{Timeout: "60s"}}
	overlay := Config{HTTP: HTTPConfig{Timeout: "120s"}}

	assert.Equal(t, "120s", Merge(base, overlay).HTTP.Timeout)
	assert.Equal(t, "60s", Merge(base, Config{}).HTTP.Timeout)
}
