// Package version exposes the build version injected via ldflags.
package version

// version is set at build time:
//
//	go build -ldflags "-X github.com/docreview/readme-review/internal/version.version=v1.2.3"
var version = "v0.0.0"

// Value returns the build version.
func Value() string {
	return version
}
