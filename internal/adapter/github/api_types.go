package github

// GitHub REST API types for the two endpoints this tool touches.
// See: https://docs.github.com/en/rest/pulls/pulls#list-pull-requests-files
// and: https://docs.github.com/en/rest/issues/comments#create-an-issue-comment

// PullRequestFile is one entry from GET /repos/{owner}/{repo}/pulls/{pull_number}/files.
// Only Filename and Status are consulted; the rest is kept for completeness.
type PullRequestFile struct {
	SHA       string `json:"sha"`
	Filename  string `json:"filename"`
	Status    string `json:"status"` // added, removed, modified, renamed, ...
	Additions int    `json:"additions"`
	Deletions int    `json:"deletions"`
	Changes   int    `json:"changes"`

	// PreviousFilename is set when Status is "renamed".
	PreviousFilename string `json:"previous_filename,omitempty"`
}

// CreateCommentRequest is the request body for
// POST /repos/{owner}/{repo}/issues/{issue_number}/comments.
// PR discussion comments go through the issues endpoint.
type CreateCommentRequest struct {
	Body string `json:"body"`
}

// CreateCommentResponse is the response from creating an issue comment.
type CreateCommentResponse struct {
	ID        int64  `json:"id"`
	NodeID    string `json:"node_id"`
	User      User   `json:"user"`
	Body      string `json:"body"`
	HTMLURL   string `json:"html_url"`
	CreatedAt string `json:"created_at"`
}

// User represents a GitHub user in the response.
type User struct {
	Login string `json:"login"`
	ID    int64  `json:"id"`
	Type  string `json:"type"` // "User" or "Bot"
}

// ErrorResponse represents an error response from the GitHub API.
type ErrorResponse struct {
	Message          string `json:"message"`
	DocumentationURL string `json:"documentation_url"`
	Errors           []struct {
		Resource string `json:"resource"`
		Field    string `json:"field"`
		Code     string `json:"code"`
		Message  string `json:"message"`
	} `json:"errors,omitempty"`
}
