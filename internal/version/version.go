// Package version reports the regexplain build version.
package version

import "runtime/debug"

var (
	// Version is set at build time via -ldflags "-X ...version.Version=v1.2.3".
	Version   = "dev"
	GitCommit = "unknown"
)

// Get returns the version string, falling back to module build info.
func Get() string {
	if Version != "dev" {
		return Version
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		if info.Main.Version != "(devel)" && info.Main.Version != "" {
			return info.Main.Version
		}
	}
	return Version
}

// Info returns version details keyed for JSON output.
func Info() map[string]string {
	return map[string]string{
		"version":   Get(),
		"gitCommit": GitCommit,
	}
}
