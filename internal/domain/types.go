package domain

// File statuses reported by the source-control API for changed files.
const (
	FileStatusAdded    = "added"
	FileStatusModified = "modified"
	FileStatusRemoved  = "removed"
	FileStatusRenamed  = "renamed"
)

// ChangedFile is a single entry from the pull request's changed-file list.
type ChangedFile struct {
	Filename string
	Status   string
}

// DetectionState classifies the outcome of the README change detection.
type DetectionState int

const (
	// DetectionSkipped means no README was among the changed files; the
	// rest of the pipeline does not run. Not an error.
	DetectionSkipped DetectionState = iota

	// DetectionMatched means a README was found; Path carries its name.
	DetectionMatched

	// DetectionFailed means the changed-file listing itself failed.
	DetectionFailed
)

// String returns a human-readable name for the detection state.
func (s DetectionState) String() string {
	switch s {
	case DetectionSkipped:
		return "skipped"
	case DetectionMatched:
		return "matched"
	case DetectionFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Detection is the explicit result type gating the pipeline. It replaces
// the stringly-typed output flags the downstream steps would otherwise
// consult.
type Detection struct {
	State  DetectionState
	Path   string
	Reason string
}

// Skipped constructs a no-match detection.
func Skipped() Detection {
	return Detection{State: DetectionSkipped}
}

// Matched constructs a detection carrying the matched README path.
func Matched(path string) Detection {
	return Detection{State: DetectionMatched, Path: path}
}

// DetectionFailure constructs a failed detection with a reason.
func DetectionFailure(reason string) Detection {
	return Detection{State: DetectionFailed, Reason: reason}
}

// Review is the output of the generation step.
type Review struct {
	ProviderName string
	ModelName    string
	Text         string
	TokensIn     int
	TokensOut    int
}

// RunOutcome classifies a completed pipeline run.
type RunOutcome int

const (
	// OutcomeSkipped means no README changed; nothing downstream executed.
	OutcomeSkipped RunOutcome = iota

	// OutcomeReviewed means a review was generated. CommentPosted on the
	// RunResult records whether publishing also succeeded.
	OutcomeReviewed

	// OutcomeFailed means detection or generation failed; the recorded
	// output holds the diagnostic.
	OutcomeFailed
)

// String returns a human-readable name for the run outcome.
func (o RunOutcome) String() string {
	switch o {
	case OutcomeSkipped:
		return "skipped"
	case OutcomeReviewed:
		return "reviewed"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// RunResult is the run's full recorded output, threaded back to the caller
// instead of environment-file side channels.
type RunResult struct {
	Outcome    RunOutcome
	ReadmePath string

	// Output is the captured review text on success, or the diagnostic
	// string on generation failure. Written once, read once.
	Output string

	// CommentPosted and CommentURL describe the publishing step. A false
	// CommentPosted with OutcomeReviewed means posting failed and was
	// swallowed per the propagation policy.
	CommentPosted bool
	CommentURL    string

	// ArtifactPath is the optional local Markdown artifact, empty when
	// artifact output is disabled.
	ArtifactPath string
}

// MarkdownArtifact encapsulates the artifact generation inputs.
type MarkdownArtifact struct {
	OutputDir  string
	Repository string
	ReadmePath string
	PRNumber   int
	Review     Review
}
