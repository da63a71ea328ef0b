package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/docreview/readme-review/internal/adapter/cli"
	"github.com/docreview/readme-review/internal/adapter/gemini"
	gitadapter "github.com/docreview/readme-review/internal/adapter/git"
	githubadapter "github.com/docreview/readme-review/internal/adapter/github"
	"github.com/docreview/readme-review/internal/adapter/httpx"
	"github.com/docreview/readme-review/internal/adapter/observability"
	"github.com/docreview/readme-review/internal/adapter/output/markdown"
	"github.com/docreview/readme-review/internal/config"
	usecasegithub "github.com/docreview/readme-review/internal/usecase/github"
	"github.com/docreview/readme-review/internal/usecase/review"
	"github.com/docreview/readme-review/internal/version"
)

func main() {
	if err := run(); err != nil {
		// Redact API keys from URLs in error messages before logging
		log.Println(httpx.RedactURLSecrets(err.Error()))
		os.Exit(1)
	}
}

func run() error {
	// Create cancellable context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load(config.LoaderOptions{
		ConfigPaths: defaultConfigPaths(),
		FileName:    "rr",
		EnvPrefix:   "RR",
	})
	if err != nil {
		return fmt.Errorf("config load failed: %w", err)
	}

	repoDir := cfg.Git.RepositoryDir
	if repoDir == "" {
		repoDir = "."
	}

	logLevel, logFormat, logEnabled := resolveLogging(cfg.Observability.Logging)

	var apiLogger httpx.Logger
	var pipelineLogger review.Logger
	if logEnabled {
		apiLogger = httpx.NewDefaultLogger(logLevel, logFormat, cfg.Observability.Logging.RedactAPIKeys)
		pipelineLogger = observability.NewPipelineLogger(logLevel, logFormat)
	}

	// Credentials come from the environment when not set in config; they
	// are never logged.
	geminiKey := cfg.Gemini.APIKey
	if geminiKey == "" {
		geminiKey = os.Getenv("GEMINI_API_KEY")
	}
	if geminiKey == "" {
		log.Println("warning: no Gemini API key configured (set GEMINI_API_KEY or gemini.apiKey); generation will fail if a README changed")
	}

	githubToken := cfg.GitHub.Token
	if githubToken == "" {
		githubToken = os.Getenv("GITHUB_TOKEN")
	}
	if githubToken == "" {
		log.Println("warning: no GitHub token configured (set GITHUB_TOKEN or github.token); API calls will be unauthenticated")
	}

	model := cfg.Gemini.Model
	if model == "" {
		model = "gemini-2.0-flash"
	}

	geminiClient := gemini.NewHTTPClient(geminiKey, model, cfg.Gemini, cfg.HTTP)
	if apiLogger != nil {
		geminiClient.SetLogger(apiLogger)
	}
	provider := gemini.NewProvider(model, geminiClient)

	githubClient := githubadapter.NewClient(githubToken)
	if cfg.GitHub.BaseURL != "" {
		githubClient.SetBaseURL(cfg.GitHub.BaseURL)
	}
	if timeout := httpx.ParseTimeout("", cfg.HTTP.Timeout, 0); timeout > 0 {
		githubClient.SetTimeout(timeout)
	}

	commenter := usecasegithub.NewCommenter(githubClient)
	loader := gitadapter.NewLoader(repoDir)

	// Timestamp function for deterministic artifact file naming
	nowFunc := func() string {
		return time.Now().UTC().Format("20060102T150405Z")
	}
	markdownWriter := markdown.NewWriter(nowFunc)

	orchestrator := review.NewOrchestrator(review.OrchestratorDeps{
		Lister:   githubClient,
		Loader:   loader,
		Provider: provider,
		Poster:   &commentPosterAdapter{commenter: commenter},
		Artifact: markdownWriter,
		Prompt:   review.PromptBuilder{Instructions: cfg.Review.Instructions},
		Logger:   pipelineLogger,
	})

	root := cli.NewRootCommand(cli.Dependencies{
		Runner:               orchestrator,
		DefaultOutput:        cfg.Output.Directory,
		DefaultWriteArtifact: cfg.Output.WriteArtifact,
		Version:              version.Value(),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if errors.Is(err, cli.ErrVersionRequested) {
			return nil
		}
		return fmt.Errorf("command failed: %w", err)
	}
	return nil
}

func defaultConfigPaths() []string {
	paths := []string{"."}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "rr"))
	}
	return paths
}

// resolveLogging maps the logging config onto logger settings. Format
// "auto" picks human output on a terminal and JSON under a CI runner.
func resolveLogging(cfg config.LoggingConfig) (httpx.LogLevel, httpx.LogFormat, bool) {
	level := httpx.LogLevelInfo
	switch cfg.Level {
	case "debug":
		level = httpx.LogLevelDebug
	case "error":
		level = httpx.LogLevelError
	}

	format := httpx.LogFormatHuman
	switch cfg.Format {
	case "json":
		format = httpx.LogFormatJSON
	case "human":
		format = httpx.LogFormatHuman
	default: // auto
		if !review.IsOutputTerminal() {
			format = httpx.LogFormatJSON
		}
	}

	return level, format, cfg.Enabled
}

// commentPosterAdapter bridges the comment usecase to the orchestrator's
// CommentPoster port.
type commentPosterAdapter struct {
	commenter *usecasegithub.Commenter
}

// PostReviewComment implements review.CommentPoster.
func (a *commentPosterAdapter) PostReviewComment(ctx context.Context, req review.CommentRequest) (*review.CommentResult, error) {
	result, err := a.commenter.PostReviewComment(ctx, usecasegithub.PostCommentRequest{
		Owner:      req.Owner,
		Repo:       req.Repo,
		PullNumber: req.PullNumber,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		return nil, err
	}
	return &review.CommentResult{
		CommentID: result.CommentID,
		HTMLURL:   result.HTMLURL,
	}, nil
}

// Compile-time interface compliance checks
var _ review.Provider = (*gemini.Provider)(nil)
var _ review.FileLister = (*githubadapter.Client)(nil)
var _ review.ContentLoader = (*gitadapter.Loader)(nil)
var _ review.CommentPoster = (*commentPosterAdapter)(nil)
var _ review.ArtifactWriter = (*markdown.Writer)(nil)
var _ cli.PipelineRunner = (*review.Orchestrator)(nil)
