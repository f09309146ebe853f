// Package version holds the build version reported by the CLI and /health.
package version

// Version is set with -ldflags "-X github.com/bnema/recitebot/internal/version.Version=v1.2.3".
var Version = "dev"
