package md2html

import "runtime"

// Worker sizing bounds for batch conversion.
const (
	// MinWorkers ensures at least one worker is available.
	MinWorkers = 1

	// MaxWorkers caps automatic sizing.
	MaxWorkers = 8
)

// ResolveWorkers determines the number of concurrent conversions.
// Priority: explicit workers > GOMAXPROCS-based calculation.
// Exported for use by servers and CLIs.
func ResolveWorkers(workers int) int {
	if workers > 0 {
		return workers
	}

	// GOMAXPROCS is adjusted by automaxprocs for containers
	return min(max(runtime.GOMAXPROCS(0), MinWorkers), MaxWorkers)
}
