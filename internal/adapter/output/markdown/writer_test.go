package markdown

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docreview/readme-review/internal/domain"
)

func fixedClock() string { return "20260823T120000Z" }

func TestWrite_CreatesArtifact(t *testing.T) {
	dir := t.TempDir()
	writer := NewWriter(fixedClock)

	path, err := writer.Write(context.Background(), domain.MarkdownArtifact{
		OutputDir:  dir,
		Repository: "acme/widgets",
		ReadmePath: "README.md",
		PRNumber:   42,
		Review: domain.Review{
			ProviderName: "gemini",
			ModelName:    "gemini-2.0-flash",
			Text:         "Add a troubleshooting section.",
			TokensIn:     300,
			TokensOut:    50,
		},
	})

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "acme-widgets_pr42_20260823T120000Z.md"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	text := string(content)
	assert.Contains(t, text, "# README Review Report")
	assert.Contains(t, text, "Provider: Gemini (gemini-2.0-flash)")
	assert.Contains(t, text, "Repository: acme/widgets")
	assert.Contains(t, text, "Pull request: #42")
	assert.Contains(t, text, "Document: README.md")
	assert.Contains(t, text, "Tokens: 300 in / 50 out")
	assert.Contains(t, text, "## Suggestions")
	assert.Contains(t, text, "Add a troubleshooting section.")
}

func TestWrite_CreatesOutputDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	writer := NewWriter(fixedClock)

	path, err := writer.Write(context.Background(), domain.MarkdownArtifact{
		OutputDir:  dir,
		Repository: "acme/widgets",
		PRNumber:   1,
	})

	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestSanitise(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"acme/widgets", "acme-widgets"},
		{"ACME/Widgets", "acme-widgets"},
		{"name with spaces", "name-with-spaces"},
		{"", "unknown"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitise(tt.in))
	}
}
