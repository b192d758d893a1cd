package buildconfig

import "runtime/debug"

// Build-time variables injected via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

// Version returns the build version.
func Version() string {
	return version
}

// Commit returns the git commit hash, falling back to the VCS revision
// recorded in the binary when ldflags did not set one.
func Commit() string {
	if commit != "unknown" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" {
				return s.Value
			}
		}
	}
	return commit
}

// VersionInfo returns full version information.
func VersionInfo() map[string]string {
	return map[string]string{
		"version": version,
		"commit":  Commit(),
	}
}
