// Package version holds the CLI version, overridable at link time.
package version

// Version is the canvasctl version string. Set with
// -ldflags "-X .../internal/version.Version=x.y.z" at build time.
var Version = "0.1.0-dev"
