// Package github provides the use case for publishing review comments.
package github

import (
	"context"
	"strings"

	adapter "github.com/docreview/readme-review/internal/adapter/github"
)

const (
	commentHeading = "## README Review Suggestions"
	commentFooter  = "_This review was generated automatically by Gemini._"
)

// CommentClient defines the interface for posting PR comments.
// This interface allows for mocking in tests.
type CommentClient interface {
	CreateIssueComment(ctx context.Context, owner, repo string, issueNumber int, body string) (*adapter.CreateCommentResponse, error)
}

// Commenter posts review text to a pull request's discussion thread.
type Commenter struct {
	client CommentClient
}

// NewCommenter creates a new Commenter with the given client.
func NewCommenter(client CommentClient) *Commenter {
	return &Commenter{client: client}
}

// PostCommentRequest contains all data needed to post a review comment.
type PostCommentRequest struct {
	Owner      string
	Repo       string
	PullNumber int

	// ReviewText is the raw model output; it is escaped and wrapped in the
	// fixed template before posting.
	ReviewText string
}

// PostCommentResult contains the result of posting a comment.
type PostCommentResult struct {
	CommentID int64
	HTMLURL   string
}

// PostReviewComment escapes the review text, wraps it in the fixed
// heading/footer template, and posts it. The caller decides whether a
// posting failure is fatal; this method just reports it.
func (c *Commenter) PostReviewComment(ctx context.Context, req PostCommentRequest) (*PostCommentResult, error) {
	body := BuildCommentBody(req.ReviewText)

	resp, err := c.client.CreateIssueComment(ctx, req.Owner, req.Repo, req.PullNumber, body)
	if err != nil {
		return nil, err
	}

	return &PostCommentResult{
		CommentID: resp.ID,
		HTMLURL:   resp.HTMLURL,
	}, nil
}

// BuildCommentBody wraps escaped review text in the fixed comment template.
func BuildCommentBody(reviewText string) string {
	var builder strings.Builder
	builder.WriteString(commentHeading)
	builder.WriteString("\n\n")
	builder.WriteString(EscapeBackticks(reviewText))
	builder.WriteString("\n\n---\n")
	builder.WriteString(commentFooter)
	builder.WriteString("\n")
	return builder.String()
}

// EscapeBackticks prefixes every backtick with a backslash so model output
// cannot terminate a surrounding code span in the rendered comment.
func EscapeBackticks(text string) string {
	return strings.ReplaceAll(text, "`", "\\`")
}
