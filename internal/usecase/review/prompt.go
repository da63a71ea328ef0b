package review

import "strings"

// promptHeader is the fixed instruction sent with every review request.
// The document body is interpolated verbatim below it.
const promptHeader = `Please review the following README documentation. ` +
	`Check grammar, spelling, style, clarity, and substance. ` +
	`Point out sections that are confusing, redundant, or missing, and give ` +
	`specific, actionable suggestions for improvement.`

// PromptBuilder assembles the review prompt from the document text.
type PromptBuilder struct {
	// Instructions are optional extra reviewer guidance appended after the
	// fixed header.
	Instructions string
}

// Build returns the full prompt for the given document text.
func (b PromptBuilder) Build(document string) string {
	var builder strings.Builder
	builder.WriteString(promptHeader)
	if b.Instructions != "" {
		builder.WriteString("\n\nAdditional instructions:\n")
		builder.WriteString(b.Instructions)
	}
	builder.WriteString("\n\n---\n\n")
	builder.WriteString(document)
	return builder.String()
}
