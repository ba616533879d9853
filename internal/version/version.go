// Package version holds the build version, set at link time with
// -ldflags "-X github.com/bnema/bundle-deploy-cli/internal/version.Version=...".
package version

var Version = "dev"
