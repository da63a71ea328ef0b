package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/docreview/readme-review/internal/domain"
	"github.com/docreview/readme-review/internal/usecase/review"
)

// ErrVersionRequested indicates the user requested the CLI version and no further work should be done.
var ErrVersionRequested = errors.New("version requested")

// PipelineRunner defines the dependency required to run the pr command.
type PipelineRunner interface {
	Run(ctx context.Context, req review.RunRequest) (domain.RunResult, error)
}

// Arguments encapsulates IO writers injected from the host process.
type Arguments struct {
	OutWriter io.Writer
	ErrWriter io.Writer
}

// Dependencies captures the collaborators for the CLI.
type Dependencies struct {
	Runner               PipelineRunner
	Args                 Arguments
	DefaultOutput        string
	DefaultWriteArtifact bool
	Version              string
}

// NewRootCommand constructs the root Cobra command.
func NewRootCommand(deps Dependencies) *cobra.Command {
	versionString := deps.Version
	if versionString == "" {
		versionString = "v0.0.0"
	}

	root := &cobra.Command{
		Use:   "rr",
		Short: "README review automation for pull requests",
	}
	root.SilenceUsage = true
	root.SilenceErrors = true

	outWriter := deps.Args.OutWriter
	if outWriter == nil {
		outWriter = os.Stdout
	}
	errWriter := deps.Args.ErrWriter
	if errWriter == nil {
		errWriter = os.Stderr
	}
	root.SetOut(outWriter)
	root.SetErr(errWriter)

	reviewCmd := &cobra.Command{
		Use:   "review",
		Short: "Run a README review",
	}
	reviewCmd.AddCommand(prCommand(deps.Runner, deps.DefaultOutput, deps.DefaultWriteArtifact))
	root.AddCommand(reviewCmd)

	var showVersion bool
	root.PersistentFlags().BoolVarP(&showVersion, "version", "v", false, "Show version and exit")
	versionHandler := func(cmd *cobra.Command, args []string) error {
		if showVersion {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), versionString)
			return ErrVersionRequested
		}
		return nil
	}
	root.PersistentPreRunE = versionHandler
	root.PreRunE = versionHandler
	root.RunE = func(cmd *cobra.Command, args []string) error {
		if err := versionHandler(cmd, args); err != nil {
			return err
		}
		return cmd.Help()
	}

	return root
}

func prCommand(runner PipelineRunner, defaultOutput string, defaultWriteArtifact bool) *cobra.Command {
	var owner string
	var repo string
	var number int
	var headBranch string
	var repository string
	var writeArtifact bool
	var outputDir string

	cmd := &cobra.Command{
		Use:   "pr [number]",
		Short: "Review the README changed by a pull request",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				parsed, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid pull request number %q", args[0])
				}
				number = parsed
			}
			if owner == "" || repo == "" {
				return fmt.Errorf("--owner and --repo are required")
			}
			if number <= 0 {
				return fmt.Errorf("pull request number must be a positive integer; pass as an argument or use --number")
			}

			if repository == "" {
				repository = fmt.Sprintf("%s/%s", owner, repo)
			}

			result, err := runner.Run(cmd.Context(), review.RunRequest{
				PR: review.PullRequestRef{
					Owner:      owner,
					Repo:       repo,
					Number:     number,
					HeadBranch: headBranch,
				},
				WriteArtifact: writeArtifact,
				OutputDir:     outputDir,
				Repository:    repository,
			})
			printSummary(cmd.OutOrStdout(), result)
			return err
		},
	}

	cmd.Flags().StringVar(&owner, "owner", "", "Repository owner (user or organization)")
	cmd.Flags().StringVar(&repo, "repo", "", "Repository name")
	cmd.Flags().IntVar(&number, "number", 0, "Pull request number (overrides positional)")
	cmd.Flags().StringVar(&headBranch, "head-branch", "", "Head branch of the pull request (informational)")
	cmd.Flags().StringVar(&repository, "repository", "", "Repository name override for artifacts")
	cmd.Flags().BoolVar(&writeArtifact, "write-artifact", defaultWriteArtifact, "Also write the review to a local Markdown file")
	if defaultOutput == "" {
		defaultOutput = "out"
	}
	cmd.Flags().StringVar(&outputDir, "output", defaultOutput, "Directory for review artifacts")

	return cmd
}

func printSummary(w io.Writer, result domain.RunResult) {
	switch result.Outcome {
	case domain.OutcomeSkipped:
		_, _ = fmt.Fprintln(w, "No README changes detected; nothing to review.")
	case domain.OutcomeReviewed:
		_, _ = fmt.Fprintf(w, "Reviewed %s.\n", result.ReadmePath)
		if result.CommentPosted {
			_, _ = fmt.Fprintf(w, "Comment posted: %s\n", result.CommentURL)
		} else {
			_, _ = fmt.Fprintln(w, "Comment could not be posted; see log for details.")
		}
		if result.ArtifactPath != "" {
			_, _ = fmt.Fprintf(w, "Artifact written: %s\n", result.ArtifactPath)
		}
	case domain.OutcomeFailed:
		_, _ = fmt.Fprintf(w, "Review failed: %s\n", result.Output)
	}
}
