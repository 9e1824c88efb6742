package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime may be set via ldflags, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/qa-moderation/internal/app.Version=1.0.0"
//
// Commit and BuildTime fall back to the VCS stamp the Go toolchain embeds.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildVersion returns the version string reported in startup logs and on
// GET /health.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		commit, built = fromBuildSettings(info.Settings, commit, built)
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, commit, built)
}

// fromBuildSettings fills unset commit and build time from vcs.* settings.
// A dirty tree is marked with a "+dirty" suffix on the revision.
func fromBuildSettings(settings []debug.BuildSetting, commit, built string) (string, string) {
	var revision, modified, vcsTime string
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value
		case "vcs.time":
			vcsTime = s.Value
		}
	}

	if commit == "unknown" && revision != "" {
		if len(revision) > 12 {
			revision = revision[:12]
		}
		commit = revision
		if modified == "true" {
			commit += "+dirty"
		}
	}
	if built == "unknown" && vcsTime != "" {
		built = vcsTime
	}
	return commit, built
}
