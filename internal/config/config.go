package config

// Config represents the full application configuration.
type Config struct {
	Gemini        GeminiConfig        `yaml:"gemini"`
	GitHub        GitHubConfig        `yaml:"github"`
	Git           GitConfig           `yaml:"git"`
	HTTP          HTTPConfig          `yaml:"http"`
	Output        OutputConfig        `yaml:"output"`
	Review        ReviewConfig        `yaml:"review"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// GeminiConfig configures the text-generation provider.
type GeminiConfig struct {
	Model  string `yaml:"model"`
	APIKey string `yaml:"apiKey"`

	// Timeout overrides the global HTTP timeout when set (e.g. "90s").
	Timeout string `yaml:"timeout"`
}

// GitHubConfig configures the source-control API client.
type GitHubConfig struct {
	Token string `yaml:"token"`

	// BaseURL overrides the API endpoint, e.g. for GitHub Enterprise.
	BaseURL string `yaml:"baseURL"`
}

// GitConfig locates the checked-out working tree.
type GitConfig struct {
	RepositoryDir string `yaml:"repositoryDir"`
}

// HTTPConfig holds global HTTP client settings.
type HTTPConfig struct {
	Timeout string `yaml:"timeout"`
}

// OutputConfig configures the optional local review artifact.
type OutputConfig struct {
	// WriteArtifact enables writing the review to a local Markdown file
	// in addition to posting the PR comment.
	WriteArtifact bool `yaml:"writeArtifact"`

	Directory string `yaml:"directory"`
}

// ReviewConfig configures the review behavior.
type ReviewConfig struct {
	// Instructions are optional extra instructions appended to the fixed
	// review prompt.
	Instructions string `yaml:"instructions"`
}

// ObservabilityConfig configures logging.
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig configures request/response logging.
type LoggingConfig struct {
	Enabled       bool   `yaml:"enabled"`
	Level         string `yaml:"level"`         // debug, info, error
	Format        string `yaml:"format"`        // json, human, auto
	RedactAPIKeys bool   `yaml:"redactAPIKeys"` // Redact API keys in logs
}

// Merge combines multiple configuration instances, prioritising the latter ones.
func Merge(configs ...Config) Config {
	result := Config{}
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}

func merge(base, overlay Config) Config {
	result := base

	result.Gemini = chooseGemini(base.Gemini, overlay.Gemini)
	result.GitHub = chooseGitHub(base.GitHub, overlay.GitHub)
	result.Git = chooseGit(base.Git, overlay.Git)
	result.HTTP = chooseHTTP(base.HTTP, overlay.HTTP)
	result.Output = chooseOutput(base.Output, overlay.Output)
	result.Review = chooseReview(base.Review, overlay.Review)
	result.Observability = chooseObservability(base.Observability, overlay.Observability)

	return result
}

func chooseGemini(base, overlay GeminiConfig) GeminiConfig {
	result := base
	if overlay.Model != "" {
		result.Model = overlay.Model
	}
	if overlay.APIKey != "" {
		result.APIKey = overlay.APIKey
	}
	if overlay.Timeout != "" {
		result.Timeout = overlay.Timeout
	}
	return result
}

func chooseGitHub(base, overlay GitHubConfig) GitHubConfig {
	result := base
	if overlay.Token != "" {
		result.Token = overlay.Token
	}
	if overlay.BaseURL != "" {
		result.BaseURL = overlay.BaseURL
	}
	return result
}

func chooseGit(base, overlay GitConfig) GitConfig {
	if overlay.RepositoryDir != "" {
		return overlay
	}
	return base
}

func chooseHTTP(base, overlay HTTPConfig) HTTPConfig {
	if overlay.Timeout != "" {
		return overlay
	}
	return base
}

func chooseOutput(base, overlay OutputConfig) OutputConfig {
	if overlay.WriteArtifact || overlay.Directory != "" {
		return overlay
	}
	return base
}

func chooseReview(base, overlay ReviewConfig) ReviewConfig {
	if overlay.Instructions != "" {
		return overlay
	}
	return base
}

func chooseObservability(base, overlay ObservabilityConfig) ObservabilityConfig {
	result := base
	if overlay.Logging.Enabled || overlay.Logging.Level != "" || overlay.Logging.Format != "" {
		result.Logging = overlay.Logging
	}
	return result
}
