package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the version of the application, set by build flags
	Version = "1.0.0"
	// Commit is the git commit hash, set by build flags
	Commit = "unknown"
	// BuildDate is the build date, set by build flags
	BuildDate = "unknown"
)

// Info returns version information
func Info() string {
	return fmt.Sprintf("apkscope %s\nCommit: %s\nBuilt: %s\nGo: %s\nOS/Arch: %s/%s",
		Version,
		Commit,
		BuildDate,
		runtime.Version(),
		runtime.GOOS,
		runtime.GOARCH,
	)
}

// ToolVersion is the value written to the tool_version field of reports
func ToolVersion() string {
	return Version
}
