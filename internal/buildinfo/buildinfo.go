// Package buildinfo carries the identifiers stamped at build time via
// -ldflags. The window title and the startup log line read from here.
package buildinfo

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier: the release version when stamped,
// otherwise the abbreviated commit, otherwise "dev".
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}
