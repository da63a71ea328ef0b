package review_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/docreview/readme-review/internal/usecase/review"
)

func TestPromptBuilder_DocumentVerbatim(t *testing.T) {
	document := "# Title\n\nSome `code` and a\nmulti-line body.\n"

	prompt := review.PromptBuilder{}.Build(document)

	assert.True(t, strings.HasSuffix(prompt, document))
	assert.Contains(t, prompt, "review the following README")
}

func TestPromptBuilder_WithInstructions(t *testing.T) {
	builder := review.PromptBuilder{Instructions: "Focus on the installation section."}

	prompt := builder.Build("body")

	assert.Contains(t, prompt, "Additional instructions:")
	assert.Contains(t, prompt, "Focus on the installation section.")
	// Instructions come before the document
	assert.Less(t,
		strings.Index(prompt, "Focus on the installation section."),
		strings.Index(prompt, "body"))
}

func TestPromptBuilder_WithoutInstructions(t *testing.T) {
	prompt := review.PromptBuilder{}.Build("body")

	assert.NotContains(t, prompt, "Additional instructions:")
}
