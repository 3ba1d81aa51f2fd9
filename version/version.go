// Package version holds build information injected at link time.
package version

import "runtime"

// These are set via -ldflags at build time, e.g.:
//
//	go build -ldflags "-X github.com/templatelab/routeset/version.GitRelease=v0.2.0"
var (
	// GitRelease is the release tag or "dev" for untagged builds.
	GitRelease = "dev"

	// GitCommit is the short commit hash.
	GitCommit = "unknown"

	// GitCommitDate is the commit date in RFC 3339 format.
	GitCommitDate = "unknown"
)

// GoInfo reports the Go toolchain version used for the build.
var GoInfo = runtime.Version()
