// Package version reports which build of the slicer is running.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set with -ldflags "-X topster-slicer/internal/version.GitCommit=...".
// Unset values fall back to the VCS stamps the go command embeds.
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// String returns the one-line -version output for the named command.
func String(name string) string {
	var settings []debug.BuildSetting
	if info, ok := debug.ReadBuildInfo(); ok {
		settings = info.Settings
	}
	return describe(name, settings)
}

func describe(name string, settings []debug.BuildSetting) string {
	commit, built, dirty := GitCommit, BuildTime, false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" {
				commit = s.Value
				if len(commit) > 12 {
					commit = commit[:12]
				}
			}
		case "vcs.time":
			if built == "unknown" {
				built = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s %s (commit %s, built %s)", name, Version, commit, built)
}
