package git

import (
	"context"
	"fmt"
	"io"

	goGit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Loader reads file content from the head revision of a checked-out
// repository, backed by go-git.
type Loader struct {
	repoDir string
}

// NewLoader constructs a Loader for the provided repository directory.
func NewLoader(repoDir string) *Loader {
	return &Loader{repoDir: repoDir}
}

// ReadFile returns the raw bytes of path as committed at HEAD. In a CI
// checkout of a pull request, HEAD is the PR's head revision, so this is
// the content under review regardless of any local working-tree noise.
func (l *Loader) ReadFile(ctx context.Context, path string) ([]byte, error) {
	repo, err := goGit.PlainOpenWithOptions(l.repoDir, &goGit.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("open repo: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return nil, fmt.Errorf("resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return nil, fmt.Errorf("resolve head commit: %w", err)
	}

	file, err := commit.File(path)
	if err != nil {
		if err == object.ErrFileNotFound {
			return nil, fmt.Errorf("file %s not found at head revision %s", path, head.Hash())
		}
		return nil, fmt.Errorf("lookup %s: %w", path, err)
	}

	reader, err := file.Blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("open blob for %s: %w", path, err)
	}
	defer reader.Close()

	content, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return content, nil
}
