// Package buildinfo reports the version stamped into the binary.
package buildinfo

import "runtime/debug"

// Version, Commit and Date are set at build time via
// -ldflags "-X orrery/internal/buildinfo.Version=...".
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and the startup log.
// Without ldflags it falls back to the VCS revision the go tool embedded.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return short(Commit)
	}
	if rev, dirty := vcsRevision(); rev != "" {
		if dirty {
			return short(rev) + "+dirty"
		}
		return short(rev)
	}
	return "dev"
}

func vcsRevision() (rev string, dirty bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	return rev, dirty
}

func short(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}
