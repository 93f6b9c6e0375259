// Package buildinfo holds release metadata for nova binaries.
package buildinfo

// Set with -ldflags "-X github.com/novanotes/nova/internal/buildinfo.Version=..."
// for release builds. Empty for local builds, where module build info is used.
var (
	Version = ""
	Commit  = ""
)
