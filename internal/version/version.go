package version

import (
	"runtime"
	"runtime/debug"
)

// Set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Info describes the running binary.
type Info struct {
	Version   string
	Commit    string
	Date      string
	GoVersion string
}

// String formats the info on one line: "v1.2.3 (abc1234) 2026-01-01 go1.25".
func (i Info) String() string {
	return i.Version + " (" + i.Commit + ") " + i.Date + " " + i.GoVersion
}

// Get returns the version info, falling back to module build info for
// any value not injected through ldflags.
func Get() Info {
	bi, _ := debug.ReadBuildInfo()
	return resolve(Info{
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
	}, bi)
}

// Full returns the complete one-line version string.
func Full() string {
	return Get().String()
}

// Short returns only the version number.
func Short() string {
	return Get().Version
}

// resolve fills placeholder fields of base from bi. Values already set
// through ldflags are kept.
func resolve(base Info, bi *debug.BuildInfo) Info {
	if bi == nil {
		return base
	}
	if base.Version == "dev" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		base.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		if s.Value == "" {
			continue
		}
		switch s.Key {
		case "vcs.revision":
			if base.Commit == "none" {
				base.Commit = shortRev(s.Value)
			}
		case "vcs.time":
			if base.Date == "unknown" {
				base.Date = s.Value
			}
		}
	}
	return base
}

func shortRev(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
