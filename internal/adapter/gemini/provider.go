package gemini

import (
	"context"
	"fmt"

	"github.com/docreview/readme-review/internal/domain"
	"github.com/docreview/readme-review/internal/usecase/review"
)

const providerName = "gemini"

// Client abstracts the Gemini HTTP client behaviour we need.
type Client interface {
	Call(ctx context.Context, prompt string, options CallOptions) (*APIResponse, error)
}

// Provider implements the usecase Provider port.
type Provider struct {
	model  string
	client Client
}

// NewProvider constructs a Provider for the supplied model.
func NewProvider(model string, client Client) *Provider {
	return &Provider{
		model:  model,
		client: client,
	}
}

// Review sends the prompt to Gemini and translates the response.
func (p *Provider) Review(ctx context.Context, req review.ProviderRequest) (domain.Review, error) {
	if p.client == nil {
		return domain.Review{}, fmt.Errorf("gemini client missing")
	}

	resp, err := p.client.Call(ctx, req.Prompt, CallOptions{
		MaxTokens: req.MaxTokens,
	})
	if err != nil {
		return domain.Review{}, err
	}

	return domain.Review{
		ProviderName: providerName,
		ModelName:    p.model,
		Text:         resp.Text,
		TokensIn:     resp.TokensIn,
		TokensOut:    resp.TokensOut,
	}, nil
}
