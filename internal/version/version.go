// Package version holds build-time version information.
package version

// These are set at build time via ldflags.
var (
	Version = "0.1.0-dev"
	Commit  = "none"
	Date    = "unknown"
)
