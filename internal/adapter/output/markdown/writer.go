package markdown

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/docreview/readme-review/internal/domain"
)

type clock func() string

// Writer renders the review into a local Markdown artifact, for CI runs
// that want an uploadable copy alongside the PR comment.
type Writer struct {
	now clock
}

// NewWriter constructs a Markdown writer with a timestamp supplier.
func NewWriter(now clock) *Writer {
	return &Writer{now: now}
}

// Write persists a Markdown artifact to disk and returns its path.
func (w *Writer) Write(ctx context.Context, artifact domain.MarkdownArtifact) (string, error) {
	if err := os.MkdirAll(artifact.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	filename := fmt.Sprintf("%s_pr%d_%s.md",
		sanitise(artifact.Repository),
		artifact.PRNumber,
		w.now(),
	)
	path := filepath.Join(artifact.OutputDir, filename)

	content := buildContent(artifact)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write markdown: %w", err)
	}

	return path, nil
}

func buildContent(artifact domain.MarkdownArtifact) string {
	var builder strings.Builder
	caser := cases.Title(language.English)
	builder.WriteString("# README Review Report\n\n")
	builder.WriteString(fmt.Sprintf("- Provider: %s (%s)\n", caser.String(artifact.Review.ProviderName), artifact.Review.ModelName))
	builder.WriteString(fmt.Sprintf("- Repository: %s\n", artifact.Repository))
	builder.WriteString(fmt.Sprintf("- Pull request: #%d\n", artifact.PRNumber))
	builder.WriteString(fmt.Sprintf("- Document: %s\n", artifact.ReadmePath))
	builder.WriteString(fmt.Sprintf("- Tokens: %d in / %d out\n\n", artifact.Review.TokensIn, artifact.Review.TokensOut))
	builder.WriteString("## Suggestions\n\n")
	builder.WriteString(artifact.Review.Text)
	builder.WriteString("\n")
	return builder.String()
}

func sanitise(value string) string {
	if value == "" {
		return "unknown"
	}
	value = strings.ToLower(value)
	value = strings.ReplaceAll(value, string(filepath.Separator), "-")
	value = strings.ReplaceAll(value, " ", "-")
	return value
}
