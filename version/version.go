// Package version exposes build metadata stamped at link time.
package version

import "runtime"

// Populated via -ldflags at release build time, for example:
//
//	go build -ldflags "-X github.com/tsawler/outliner/version.GitRelease=v1.0.0"
var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"
)

// GoInfo reports the toolchain the binary was built with
var GoInfo = runtime.Version()
