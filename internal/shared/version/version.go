// Package version holds the build version reported by the CLI and the
// health endpoints. Overridable at build time via
// -ldflags "-X matchtix/internal/shared/version.Version=...".
package version

var Version = "1.0.0"
