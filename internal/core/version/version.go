// Package version reports what build of the service is running
package version

import "runtime/debug"

// ServiceName identifies the API binary in logs and meta endpoints
const ServiceName = "callerverify-api"

// BuildInfo is the build identity served by /meta/version and stamped into the docs
type BuildInfo struct {
	Service   string `json:"service"`
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	Date      string `json:"date"`
	GoVersion string `json:"go_version,omitempty"`
}

// stamped with -ldflags "-X callerverify/internal/core/version.version=v1.2.3"
// commit and date fall back to the vcs settings go build embeds
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// readBuildInfo is a seam for tests
var readBuildInfo = debug.ReadBuildInfo

// Info returns the build identity
func Info() BuildInfo {
	bi := BuildInfo{Service: ServiceName, Version: version, Commit: commit, Date: date}
	info, ok := readBuildInfo()
	if !ok {
		return bi
	}
	bi.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch {
		case s.Key == "vcs.revision" && bi.Commit == "none":
			bi.Commit = s.Value
		case s.Key == "vcs.time" && bi.Date == "unknown":
			bi.Date = s.Value
		}
	}
	return bi
}
