// Package version exposes build version information.
package version

import "runtime/debug"

// Version is overridden at release time via -ldflags.
var Version = "dev"

// String returns the version, falling back to VCS metadata for plain
// `go build` binaries.
func String() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 8 {
				return "dev-" + s.Value[:8]
			}
		}
	}
	return Version
}
