// Package detect decides whether a pull request touched a README.
package detect

import (
	"strings"

	"github.com/docreview/readme-review/internal/domain"
)

const readmeName = "README.md"

// Detect scans the changed-file list and returns the first README match.
// A file matches when its name is exactly README.md or ends with /README.md
// (nested paths). An empty or match-free list yields a skipped detection.
func Detect(files []domain.ChangedFile) domain.Detection {
	for _, f := range files {
		if IsReadme(f.Filename) {
			return domain.Matched(f.Filename)
		}
	}
	return domain.Skipped()
}

// IsReadme reports whether filename names a README at any depth.
func IsReadme(filename string) bool {
	return filename == readmeName || strings.HasSuffix(filename, "/"+readmeName)
}
