package review

import (
	"context"
	"errors"
	"fmt"

	"github.com/docreview/readme-review/internal/adapter/httpx"
	"github.com/docreview/readme-review/internal/domain"
	"github.com/docreview/readme-review/internal/usecase/detect"
)

// missingContentDiagnostic is recorded when the generator runs without any
// encoded README content. Checked before any network call.
const missingContentDiagnostic = "Error: No README content was provided for review."

// ProviderRequest is the outbound payload for the text-generation provider.
type ProviderRequest struct {
	Prompt    string
	MaxTokens int
}

// Provider generates a review for a prompt.
type Provider interface {
	Review(ctx context.Context, req ProviderRequest) (domain.Review, error)
}

// FileLister queries the files changed in a pull request.
type FileLister interface {
	ListPullRequestFiles(ctx context.Context, owner, repo string, pullNumber int) ([]domain.ChangedFile, error)
}

// ContentLoader reads a file's raw bytes from the head revision.
type ContentLoader interface {
	ReadFile(ctx context.Context, path string) ([]byte, error)
}

// CommentRequest carries the review text to the publisher.
type CommentRequest struct {
	Owner      string
	Repo       string
	PullNumber int
	ReviewText string
}

// CommentResult describes a posted comment.
type CommentResult struct {
	CommentID int64
	HTMLURL   string
}

// CommentPoster publishes a review comment on the pull request.
type CommentPoster interface {
	PostReviewComment(ctx context.Context, req CommentRequest) (*CommentResult, error)
}

// ArtifactWriter persists an optional local copy of the review.
type ArtifactWriter interface {
	Write(ctx context.Context, artifact domain.MarkdownArtifact) (string, error)
}

// PullRequestRef identifies the pull request being processed, as supplied
// by the triggering event.
type PullRequestRef struct {
	Owner      string
	Repo       string
	Number     int
	HeadBranch string
}

// RunRequest captures the inputs for one pipeline run.
type RunRequest struct {
	PR PullRequestRef

	// WriteArtifact enables the optional local Markdown artifact.
	WriteArtifact bool
	OutputDir     string
	Repository    string
}

// OrchestratorDeps captures the collaborators for the pipeline.
type OrchestratorDeps struct {
	Lister   FileLister
	Loader   ContentLoader
	Provider Provider
	Poster   CommentPoster
	Artifact ArtifactWriter
	Prompt   PromptBuilder
	Logger   Logger
}

// Orchestrator runs the four pipeline steps in order: detect, load,
// generate, publish. Strictly sequential; each step either fully executes
// or is skipped based on the detection result.
type Orchestrator struct {
	deps OrchestratorDeps
}

// NewOrchestrator constructs the pipeline orchestrator.
func NewOrchestrator(deps OrchestratorDeps) *Orchestrator {
	return &Orchestrator{deps: deps}
}

// Run executes one pipeline run for the given pull request. A non-nil
// error marks the run failed (non-zero exit); the RunResult still carries
// the recorded output, including failure diagnostics.
//
// Error policy: detection absence is a no-op outcome; listing, loading,
// and generation failures are terminal; publishing and artifact failures
// are logged and swallowed.
func (o *Orchestrator) Run(ctx context.Context, req RunRequest) (domain.RunResult, error) {
	detection, files, err := o.detectChange(ctx, req.PR)
	if err != nil {
		return domain.RunResult{
			Outcome: domain.OutcomeFailed,
			Output:  detection.Reason,
		}, fmt.Errorf("list changed files: %w", err)
	}

	o.logInfo(ctx, "change detection complete", map[string]interface{}{
		"pr":      req.PR.Number,
		"files":   len(files),
		"state":   detection.State.String(),
		"matched": detection.Path,
	})

	if detection.State == domain.DetectionSkipped {
		return domain.RunResult{Outcome: domain.OutcomeSkipped}, nil
	}

	encoded, err := o.loadContent(ctx, detection.Path)
	if err != nil {
		return domain.RunResult{
			Outcome:    domain.OutcomeFailed,
			ReadmePath: detection.Path,
			Output:     err.Error(),
		}, fmt.Errorf("load %s: %w", detection.Path, err)
	}

	review, diagnostic, err := o.generate(ctx, encoded)
	if err != nil {
		return domain.RunResult{
			Outcome:    domain.OutcomeFailed,
			ReadmePath: detection.Path,
			Output:     diagnostic,
		}, err
	}

	result := domain.RunResult{
		Outcome:    domain.OutcomeReviewed,
		ReadmePath: detection.Path,
		Output:     review.Text,
	}

	// Publisher gate: detection matched AND generation succeeded with a
	// non-empty review. Failure diagnostics never reach the PR thread.
	if review.Text != "" {
		o.publish(ctx, req, review.Text, &result)
	}

	if req.WriteArtifact && o.deps.Artifact != nil {
		o.writeArtifact(ctx, req, detection.Path, review, &result)
	}

	return result, nil
}

// detectChange lists the PR's changed files and applies the README
// predicate. A listing failure yields a failed detection.
func (o *Orchestrator) detectChange(ctx context.Context, pr PullRequestRef) (domain.Detection, []domain.ChangedFile, error) {
	files, err := o.deps.Lister.ListPullRequestFiles(ctx, pr.Owner, pr.Repo, pr.Number)
	if err != nil {
		return domain.DetectionFailure(err.Error()), nil, err
	}
	return detect.Detect(files), files, nil
}

// loadContent reads the README at the head revision and encodes it for the
// generator step.
func (o *Orchestrator) loadContent(ctx context.Context, path string) (string, error) {
	content, err := o.deps.Loader.ReadFile(ctx, path)
	if err != nil {
		return "", err
	}
	return EncodeContent(content), nil
}

// generate decodes the content and submits it for review. It returns the
// review on success, or a human-readable diagnostic plus the underlying
// error on failure. The empty-content check runs before any network call.
func (o *Orchestrator) generate(ctx context.Context, encoded string) (domain.Review, string, error) {
	if encoded == "" {
		return domain.Review{}, missingContentDiagnostic, errors.New("no README content to review")
	}

	decoded, err := DecodeContent(encoded)
	if err != nil {
		return domain.Review{}, err.Error(), err
	}

	prompt := o.deps.Prompt.Build(string(decoded))

	review, err := o.deps.Provider.Review(ctx, ProviderRequest{Prompt: prompt})
	if err != nil {
		return domain.Review{}, GenerationDiagnostic(err), fmt.Errorf("generate review: %w", err)
	}

	return review, "", nil
}

// publish posts the review comment. Failures are logged and swallowed; the
// run is not failed solely because commenting failed.
func (o *Orchestrator) publish(ctx context.Context, req RunRequest, reviewText string, result *domain.RunResult) {
	posted, err := o.deps.Poster.PostReviewComment(ctx, CommentRequest{
		Owner:      req.PR.Owner,
		Repo:       req.PR.Repo,
		PullNumber: req.PR.Number,
		ReviewText: reviewText,
	})
	if err != nil {
		o.logWarning(ctx, "failed to post review comment", map[string]interface{}{
			"pr":    req.PR.Number,
			"error": httpx.RedactURLSecrets(err.Error()),
		})
		return
	}

	result.CommentPosted = true
	result.CommentURL = posted.HTMLURL
}

// writeArtifact writes the optional local Markdown copy. Best effort.
func (o *Orchestrator) writeArtifact(ctx context.Context, req RunRequest, path string, review domain.Review, result *domain.RunResult) {
	artifactPath, err := o.deps.Artifact.Write(ctx, domain.MarkdownArtifact{
		OutputDir:  req.OutputDir,
		Repository: req.Repository,
		ReadmePath: path,
		PRNumber:   req.PR.Number,
		Review:     review,
	})
	if err != nil {
		o.logWarning(ctx, "failed to write review artifact", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	result.ArtifactPath = artifactPath
}

func (o *Orchestrator) logInfo(ctx context.Context, message string, fields map[string]interface{}) {
	if o.deps.Logger != nil {
		o.deps.Logger.LogInfo(ctx, message, fields)
	}
}

func (o *Orchestrator) logWarning(ctx context.Context, message string, fields map[string]interface{}) {
	if o.deps.Logger != nil {
		o.deps.Logger.LogWarning(ctx, message, fields)
	}
}

// GenerationDiagnostic renders the fixed diagnostic template for a failed
// model call. Typed HTTP errors contribute only their message, so the
// recorded output reads like the upstream failure description.
func GenerationDiagnostic(err error) string {
	return fmt.Sprintf("Error: Could not get review from Gemini. Details: %s", describeFailure(err))
}

func describeFailure(err error) string {
	var httpErr *httpx.Error
	if errors.As(err, &httpErr) {
		return httpErr.Message
	}
	return err.Error()
}

// MissingContentDiagnostic returns the fixed diagnostic for an empty
// generator input.
func MissingContentDiagnostic() string {
	return missingContentDiagnostic
}
