package github

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/docreview/readme-review/internal/adapter/httpx"
	"github.com/docreview/readme-review/internal/domain"
)

const (
	defaultBaseURL = "https://api.github.com"
	defaultTimeout = 30 * time.Second
	filesPerPage   = 100
)

// Client is an HTTP client for the GitHub REST API. Calls are single
// attempts; there is no retry layer.
type Client struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a new GitHub API client with the given token.
// The token should be a personal access token or GITHUB_TOKEN from Actions.
func NewClient(token string) *Client {
	return &Client{
		token:      token,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

// SetBaseURL sets a custom base URL (for testing or GitHub Enterprise).
func (c *Client) SetBaseURL(url string) {
	c.baseURL = url
}

// SetTimeout sets the HTTP timeout.
func (c *Client) SetTimeout(timeout time.Duration) {
	c.httpClient.Timeout = timeout
}

// ListPullRequestFiles fetches all files changed in a pull request, in the
// order GitHub returns them. Pages of 100 are fetched until a short page.
func (c *Client) ListPullRequestFiles(ctx context.Context, owner, repo string, pullNumber int) ([]domain.ChangedFile, error) {
	var files []domain.ChangedFile

	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/repos/%s/%s/pulls/%d/files?per_page=%d&page=%d",
			c.baseURL, owner, repo, pullNumber, filesPerPage, page)

		var pageFiles []PullRequestFile
		if err := c.get(ctx, url, &pageFiles); err != nil {
			return nil, err
		}

		for _, f := range pageFiles {
			files = append(files, domain.ChangedFile{
				Filename: f.Filename,
				Status:   f.Status,
			})
		}

		if len(pageFiles) < filesPerPage {
			return files, nil
		}
	}
}

// CreateIssueComment posts a comment on the pull request's discussion thread.
// PRs share the issues comment endpoint.
func (c *Client) CreateIssueComment(ctx context.Context, owner, repo string, issueNumber int, body string) (*CreateCommentResponse, error) {
	reqBody := CreateCommentRequest{Body: body}
	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/repos/%s/%s/issues/%d/comments",
		c.baseURL, owner, repo, issueNumber)

	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(jsonData))
	if err != nil {
		return nil, &httpx.Error{
			Type:     httpx.ErrTypeUnknown,
			Message:  err.Error(),
			Provider: providerName,
		}
	}
	c.setHeaders(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &httpx.Error{
			Type:     httpx.ErrTypeTimeout,
			Message:  err.Error(),
			Provider: providerName,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, c.errorFromResponse(resp)
	}

	var commentResp CreateCommentResponse
	if err := json.NewDecoder(resp.Body).Decode(&commentResp); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &commentResp, nil
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return &httpx.Error{
			Type:     httpx.ErrTypeUnknown,
			Message:  err.Error(),
			Provider: providerName,
		}
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &httpx.Error{
			Type:     httpx.ErrTypeTimeout,
			Message:  err.Error(),
			Provider: providerName,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return c.errorFromResponse(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
}

// errorFromResponse reads the error body and maps it to a typed error.
// The response body is consumed.
func (c *Client) errorFromResponse(resp *http.Response) error {
	bodyBytes, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return &httpx.Error{
			Type:       httpx.ErrTypeUnknown,
			Message:    fmt.Sprintf("HTTP %d (failed to read response: %v)", resp.StatusCode, readErr),
			StatusCode: resp.StatusCode,
			Provider:   providerName,
		}
	}
	return MapHTTPError(resp.StatusCode, bodyBytes)
}
