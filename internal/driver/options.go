package driver

import (
	"github.com/tliron/commonlog"

	"wright/internal/observ"
)

func logger() commonlog.Logger {
	return commonlog.GetLogger("wright.driver")
}

// Options control a driver run. The zero value parses without limits, caching or progress.
type Options struct {
	// MaxDiagnostics caps diagnostics per file; 0 means no limit.
	MaxDiagnostics int
	// Jobs bounds parallel workers; 0 means GOMAXPROCS.
	Jobs int
	// Include and Exclude are doublestar globs relative to a walked directory.
	// An empty Include selects DefaultInclude.
	Include []string
	Exclude []string

	Cache    *DiskCache
	Progress ProgressSink
	Timer    *observ.Timer
}

// DefaultInclude selects every wright source under a directory.
const DefaultInclude = "**/*.wr"
