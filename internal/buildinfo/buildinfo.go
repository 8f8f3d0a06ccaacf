// Package buildinfo carries the version stamped at build time via
// -ldflags.
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// String formats the full version line the version command prints.
func String() string {
	return fmt.Sprintf("kdd19 %s (commit=%s, date=%s)", Version, Commit, Date)
}
