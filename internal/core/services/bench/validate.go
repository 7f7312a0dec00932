package bench

import (
	"fmt"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	validation "github.com/iamNilotpal/spanbench/pkg/errors"
	"github.com/iamNilotpal/spanbench/pkg/system"
)

func Validate(opts *Options) error {
	if opts == nil {
		return validation.Validationf("bench", nil, "options are required")
	}

	if opts.Iterations < 1 {
		return validation.Validationf("bench.iterations", opts.Iterations, "must be positive, got %d", opts.Iterations)
	}

	if opts.WarmupRounds < 0 || opts.WarmupRounds > MaxWarmupRounds {
		return validation.Validationf(
			"bench.warmup_rounds", opts.WarmupRounds, "must be between 0 and %d, got %d", MaxWarmupRounds, opts.WarmupRounds,
		)
	}

	if opts.Runs < 1 || opts.Runs > MaxRuns {
		return validation.Validationf("bench.runs", opts.Runs, "must be between 1 and %d, got %d", MaxRuns, opts.Runs)
	}

	if opts.CPU < NoCPU {
		return validation.Validationf("bench.cpu", opts.CPU, "must be %d or a cpu index, got %d", NoCPU, opts.CPU)
	}

	if opts.CPU != NoCPU {
		allowed, err := system.CPUAllowed(opts.CPU)
		if err != nil {
			return validation.NewValidationError("bench.cpu", opts.CPU, err)
		}
		if !allowed {
			return validation.Validationf("bench.cpu", opts.CPU, "cpu %d is not in the affinity mask", opts.CPU)
		}
	}

	return nil
}

func validateDependencies(deps Dependencies) error {
	if deps.Reporter == nil {
		return validation.Validationf("reporter", nil, "a reporter is required")
	}

	if len(deps.Variants) != domain.VariantCount {
		return validation.Validationf(
			"variants", len(deps.Variants), "exactly %d access patterns are required", domain.VariantCount,
		)
	}

	for i, v := range deps.Variants {
		if v.Func == nil {
			return validation.NewValidationError("variants", v.Name, fmt.Errorf("access pattern %d has no routine", i))
		}
	}

	return nil
}
