package app

import (
	"fmt"
	"runtime/debug"
)

// Set via -ldflags "-X github.com/heartmarshall/ebms-backend/internal/app.Version=...".
// Commit and BuildTime fall back to the VCS stamp of the binary.
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// BuildVersion is the string printed by `ebmsctl version` and logged at startup.
func BuildVersion() string {
	commit, built := Commit, BuildTime
	if commit == "" || built == "" {
		vcsCommit, vcsTime, dirty := vcsStamp()
		if commit == "" {
			commit = vcsCommit
			if dirty {
				commit += "-dirty"
			}
		}
		if built == "" {
			built = vcsTime
		}
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, orUnknown(commit), orUnknown(built))
}

func vcsStamp() (revision, at string, modified bool) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "", "", false
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			revision = s.Value
			if len(revision) > 12 {
				revision = revision[:12]
			}
		case "vcs.time":
			at = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}
	if revision == "" {
		modified = false
	}
	return revision, at, modified
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}
	return s
}
