package gemini

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docreview/readme-review/internal/adapter/httpx"
	"github.com/docreview/readme-review/internal/usecase/review"
)

type fakeClient struct {
	resp *APIResponse
	err  error

	prompt  string
	options CallOptions
}

func (f *fakeClient) Call(ctx context.Context, prompt string, options CallOptions) (*APIResponse, error) {
	f.prompt = prompt
	f.options = options
	return f.resp, f.err
}

func TestProviderReview_MapsResponse(t *testing.T) {
	client := &fakeClient{resp: &APIResponse{
		Text:      "Well written overall.",
		TokensIn:  500,
		TokensOut: 80,
	}}
	provider := NewProvider("gemini-2.0-flash", client)

	result, err := provider.Review(context.Background(), review.ProviderRequest{
		Prompt:    "review the docs",
		MaxTokens: 1024,
	})

	require.NoError(t, err)
	assert.Equal(t, "gemini", result.ProviderName)
	assert.Equal(t, "gemini-2.0-flash", result.ModelName)
	assert.Equal(t, "Well written overall.", result.Text)
	assert.Equal(t, 500, result.TokensIn)
	assert.Equal(t, 80, result.TokensOut)

	assert.Equal(t, "review the docs", client.prompt)
	assert.Equal(t, 1024, client.options.MaxTokens)
}

func TestProviderReview_PropagatesError(t *testing.T) {
	client := &fakeClient{err: httpx.NewRateLimitError("gemini", "quota exceeded")}
	provider := NewProvider("gemini-2.0-flash", client)

	_, err := provider.Review(context.Background(), review.ProviderRequest{Prompt: "p"})

	require.Error(t, err)
	assert.ErrorIs(t, err, httpx.NewRateLimitError("gemini", ""))
}

func TestProviderReview_NilClient(t *testing.T) {
	provider := NewProvider("gemini-2.0-flash", nil)

	_, err := provider.Review(context.Background(), review.ProviderRequest{Prompt: "p"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "client missing")
}
