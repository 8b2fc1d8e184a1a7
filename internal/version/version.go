// Package version reports the build version of vivid.
package version

// Version is set at build time:
//
//	go build -ldflags "-X vivid/internal/version.Version=v0.4.0" ./cmd/vivid
var Version = "dev"

// Short returns the version string
func Short() string {
	return Version
}
