package app

import (
	"fmt"
	"runtime/debug"
)

// Version, Commit and BuildTime are set with -ldflags at build time, e.g.
//
//	go build -ldflags "-X github.com/heartmarshall/studyset-backend/internal/app.Version=1.4.0"
//
// A plain go build leaves Commit and BuildTime to the VCS stamp.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func init() {
	if info, ok := debug.ReadBuildInfo(); ok {
		Commit, BuildTime = vcsStamp(info.Settings, Commit, BuildTime)
	}
}

// vcsStamp fills commit and built from the toolchain's vcs settings when
// ldflags left them unset.
func vcsStamp(settings []debug.BuildSetting, commit, built string) (string, string) {
	dirty, stamped := false, false
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if commit == "unknown" && s.Value != "" {
				commit, stamped = s.Value, true
				if len(commit) > 12 {
					commit = commit[:12]
				}
			}
		case "vcs.time":
			if built == "unknown" && s.Value != "" {
				built = s.Value
			}
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if dirty && stamped {
		commit += "-dirty"
	}
	return commit, built
}

// BuildVersion is the version line logged at startup.
func BuildVersion() string {
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildTime)
}
