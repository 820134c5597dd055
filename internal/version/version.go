// Package version reports which brandlint build is running.
//
// Release builds set Version, Commit and Date with ldflags:
//
//	-ldflags "-X github.com/jmylchreest/brandlint/internal/version.Version=x.y.z
//	          -X github.com/jmylchreest/brandlint/internal/version.Commit=$(git rev-parse HEAD)
//	          -X github.com/jmylchreest/brandlint/internal/version.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// Binaries built with go install carry VCS stamps instead, which fill in the
// commit and date when ldflags left them unset.
package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
)

// Name is the application name used in version strings and the User-Agent.
const Name = "brandlint"

const unknown = "unknown"

// Build metadata, overridden by ldflags.
var (
	Version = "dev"
	Commit  = unknown
	Date    = unknown
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Info describes the running build. It is served by GET /version.
type Info struct {
	Name      string `json:"name"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	Dirty     bool   `json:"dirty,omitempty"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// GetInfo resolves the build metadata.
func GetInfo() Info {
	info := Info{
		Name:      Name,
		Version:   Version,
		Commit:    Commit,
		Date:      Date,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}

	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == unknown {
				info.Commit = s.Value
			}
		case "vcs.time":
			if info.Date == unknown {
				info.Date = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return info
}

// String returns the line printed by "brandlint version".
func String() string {
	return GetInfo().String()
}

func (i Info) String() string {
	if i.Commit == unknown || i.Date == unknown {
		return fmt.Sprintf("%s version %s (%s, %s)", i.Name, i.Version, i.GoVersion, i.Platform)
	}
	commit := shortCommit(i.Commit)
	if i.Dirty {
		commit += "-dirty"
	}
	return fmt.Sprintf("%s version %s (commit: %s, built: %s, %s, %s)",
		i.Name, i.Version, commit, i.Date, i.GoVersion, i.Platform)
}

// Short returns the bare version for cobra's --version flag.
func Short() string {
	return Version
}

// UserAgent returns the User-Agent sent when fetching remote themes.
func UserAgent() string {
	return Name + "/" + Version
}

func shortCommit(commit string) string {
	if len(commit) > 8 {
		return commit[:8]
	}
	return commit
}
