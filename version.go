package id3tag

import (
	"fmt"
	"runtime"
)

// Version is the semantic version of id3tag.
const Version = "0.1.0"

// Build metadata, overridden with -ldflags:
//
//	go build -ldflags="-X github.com/simonhull/id3tag.gitCommit=$(git rev-parse --short HEAD) \
//	  -X github.com/simonhull/id3tag.buildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/id3tag
var (
	gitCommit = "unknown"
	buildTime = "unknown"
)

// VersionInfo describes the running build.
type VersionInfo struct {
	Version   string
	GitCommit string
	BuildTime string
	GoVersion string
}

// GetVersionInfo returns the version and build metadata of this binary.
func GetVersionInfo() VersionInfo {
	return VersionInfo{
		Version:   Version,
		GitCommit: gitCommit,
		BuildTime: buildTime,
		GoVersion: runtime.Version(),
	}
}

// String renders the info as printed by "id3tag --version".
func (v VersionInfo) String() string {
	return fmt.Sprintf("id3tag %s (commit %s, built %s, %s)", v.Version, v.GitCommit, v.BuildTime, v.GoVersion)
}
