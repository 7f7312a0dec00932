package bench

import (
	"github.com/iamNilotpal/spanbench/internal/adapters/checksum"
	"github.com/iamNilotpal/spanbench/internal/adapters/clock"
	"github.com/iamNilotpal/spanbench/pkg/logger"
)

const (
	DefaultIterations   = checksum.DefaultIterations
	DefaultWarmupRounds = 1
	DefaultRuns         = 1

	// NoCPU leaves the benchmark free to migrate between CPUs.
	NoCPU = -1

	MaxWarmupRounds = 1000
	MaxRuns         = 10000
)

// Returns one warm-up round and one timed run of a million iterations, unpinned.
func DefaultOptions() *Options {
	return &Options{
		Iterations:   DefaultIterations,
		WarmupRounds: DefaultWarmupRounds,
		Runs:         DefaultRuns,
		CPU:          NoCPU,
	}
}

func prepareDefaults(deps Dependencies) Dependencies {
	if deps.Clock == nil {
		deps.Clock = clock.NewMonotonic()
	}

	if deps.Logger == nil {
		deps.Logger = logger.NewNop()
	}

	if deps.Variants == nil {
		variants := checksum.Variants()
		deps.Variants = variants[:]
	}

	return deps
}
