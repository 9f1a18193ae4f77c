// Package cmd carries build metadata stamped in at link time, for example
// -ldflags "-X github.com/thoreinstein/catlog/cmd.Version=v1.2.0".
package cmd

import "fmt"

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// Summary renders the build metadata the way `catlog version` prints it.
func Summary() string {
	return fmt.Sprintf("catlog version %s\n  commit: %s\n  built:  %s\n", Version, Commit, Date)
}
