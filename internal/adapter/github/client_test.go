package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/docreview/readme-review/internal/adapter/httpx"
)

func TestListPullRequestFiles_SinglePage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "/repos/acme/widgets/pulls/42/files", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))
		assert.Equal(t, "2022-11-28", r.Header.Get("X-GitHub-Api-Version"))

		files := []PullRequestFile{
			{Filename: "README.md", Status: "modified"},
			{Filename: "src/main.py", Status: "added"},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(files)
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.SetBaseURL(server.URL)

	files, err := client.ListPullRequestFiles(context.Background(), "acme", "widgets", 42)

	require.NoError(t, err)
	require.Len(t, files, 2)
	assert.Equal(t, "README.md", files[0].Filename)
	assert.Equal(t, "modified", files[0].Status)
	assert.Equal(t, "src/main.py", files[1].Filename)
}

func TestListPullRequestFiles_Paginates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		var files []PullRequestFile
		switch page {
		case "1":
			for i := 0; i < filesPerPage; i++ {
				files = append(files, PullRequestFile{
					Filename: fmt.Sprintf("src/file_%03d.go", i),
					Status:   "modified",
				})
			}
		case "2":
			files = []PullRequestFile{{Filename: "docs/README.md", Status: "added"}}
		default:
			t.Errorf("unexpected page %q", page)
		}
		json.NewEncoder(w).Encode(files)
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.SetBaseURL(server.URL)

	files, err := client.ListPullRequestFiles(context.Background(), "acme", "widgets", 42)

	require.NoError(t, err)
	assert.Len(t, files, filesPerPage+1)
	assert.Equal(t, "docs/README.md", files[filesPerPage].Filename)
}

func TestListPullRequestFiles_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]string{"message": "Not Found"})
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.SetBaseURL(server.URL)

	_, err := client.ListPullRequestFiles(context.Background(), "acme", "missing", 1)

	require.Error(t, err)
	var httpErr *httpx.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, httpx.ErrTypeInvalidRequest, httpErr.Type)
	assert.Equal(t, "Not Found", httpErr.Message)
}

func TestCreateIssueComment_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "/repos/acme/widgets/issues/42/comments", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var reqBody CreateCommentRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "review text", reqBody.Body)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateCommentResponse{
			ID:      99,
			HTMLURL: "https://github.com/acme/widgets/pull/42#issuecomment-99",
		})
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.SetBaseURL(server.URL)

	resp, err := client.CreateIssueComment(context.Background(), "acme", "widgets", 42, "review text")

	require.NoError(t, err)
	assert.Equal(t, int64(99), resp.ID)
	assert.Equal(t, "https://github.com/acme/widgets/pull/42#issuecomment-99", resp.HTMLURL)
}

func TestCreateIssueComment_Unauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"message": "Bad credentials"})
	}))
	defer server.Close()

	client := NewClient("bad-token")
	client.SetBaseURL(server.URL)

	_, err := client.CreateIssueComment(context.Background(), "acme", "widgets", 42, "body")

	require.Error(t, err)
	var httpErr *httpx.Error
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, httpx.ErrTypeAuthentication, httpErr.Type)
	assert.Equal(t, "Bad credentials", httpErr.Message)
}

func TestCreateIssueComment_SingleAttempt(t *testing.T) {
	var calls int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient("test-token")
	client.SetBaseURL(server.URL)

	_, err := client.CreateIssueComment(context.Background(), "acme", "widgets", 42, "body")

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}
