// Package version exposes build metadata injected at link time.
package version

import (
	"fmt"
	"runtime"
)

// Set via ldflags by the mage Build target.
var (
	Version   = "0.0.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// String returns a one-line description suitable for --version output.
func String() string {
	return fmt.Sprintf("%s (commit %s, built %s, %s %s/%s)",
		Version, GitCommit, BuildDate, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
