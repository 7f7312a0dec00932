// Package bench drives the access pattern comparison: it warms the checksum
// routines up, times one call of each, verifies that they agree and hands
// every run to a reporter.
package bench

import (
	"context"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/iamNilotpal/spanbench/internal/core/ports"
	validation "github.com/iamNilotpal/spanbench/pkg/errors"
	"github.com/iamNilotpal/spanbench/pkg/system"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Options controls how much work the benchmark does.
type Options struct {
	// Iterations is the number of passes over the buffer in every call.
	//
	// Default: 1000000
	Iterations int

	// WarmupRounds is the number of untimed calls of every routine made
	// before measuring. Each round is verified.
	//
	// Default: 1
	WarmupRounds int

	// Runs is the number of timed runs, each reported as it completes.
	//
	// Default: 1
	Runs int

	// CPU pins the benchmark thread to one CPU. NoCPU disables pinning.
	CPU int
}

// Dependencies are the collaborators of a Bench. Only Reporter is required.
type Dependencies struct {
	Clock    ports.Clock
	Reporter ports.ReporterPort
	Logger   *zap.SugaredLogger

	// Variants overrides the access patterns under test, in baseline first
	// order. Nil selects the built-in fixed, indexer and ref routines.
	Variants []domain.Variant
}

// Bench runs the benchmark. It is not safe for concurrent use; the measured
// path is single threaded by construction.
type Bench struct {
	options  *Options
	clock    ports.Clock
	reporter ports.ReporterPort
	log      *zap.SugaredLogger
	variants [domain.VariantCount]domain.Variant
}

func New(opts *Options, deps Dependencies) (*Bench, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	deps = prepareDefaults(deps)
	if err := validateDependencies(deps); err != nil {
		return nil, err
	}

	b := &Bench{
		options:  opts,
		clock:    deps.Clock,
		reporter: deps.Reporter,
		log:      deps.Logger,
	}
	copy(b.variants[:], deps.Variants)

	return b, nil
}

// Warmup calls every routine WarmupRounds times without timing, so the first
// timed call does not pay for cold caches or page faults, and verifies each round.
func (b *Bench) Warmup(ctx context.Context, buf *domain.Buffer) error {
	data := buf.Bytes()

	for round := 0; round < b.options.WarmupRounds; round++ {
		var checksums [domain.VariantCount]domain.Checksum
		for i, v := range b.variants {
			if err := ctx.Err(); err != nil {
				return err
			}
			checksums[i] = v.Func(data, b.options.Iterations)
		}

		if err := b.verify(PhaseWarmup, checksums); err != nil {
			return err
		}
		b.log.Debugw("warmup round verified", "round", round, "checksum", checksums[0])
	}

	return nil
}

// Measure times one call of every routine, each call individually, and
// verifies the checksums before returning the run.
func (b *Bench) Measure(ctx context.Context, buf *domain.Buffer) (domain.Run, error) {
	var run domain.Run
	data := buf.Bytes()

	for i, v := range b.variants {
		if err := ctx.Err(); err != nil {
			return run, err
		}

		start := b.clock.Now()
		sum := v.Func(data, b.options.Iterations)
		elapsed := b.clock.Now() - start

		run.Samples[i] = domain.Sample{Variant: v.Name, Checksum: sum, Ticks: elapsed}
	}

	if err := b.verify(PhaseMeasure, run.Checksums()); err != nil {
		return run, err
	}

	return run, nil
}

// Execute warms up, then performs Runs measured runs, reporting each one as it
// completes. It returns the runs completed so far along with any error.
//
// A checksum mismatch is returned as a BenchError of category ErrorMismatch
// wrapping a *MismatchError, after the diverging values were reported.
func (b *Bench) Execute(ctx context.Context, buf *domain.Buffer) (runs []domain.Run, err error) {
	if buf == nil || buf.Len() == 0 {
		return nil, validation.Validationf("buffer", nil, "a non-empty buffer is required")
	}

	unpin, err := system.PinToCPU(b.options.CPU)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = multierr.Append(err, unpin())
	}()

	if b.options.CPU != NoCPU {
		if system.AffinitySupported {
			b.log.Infow("benchmark thread pinned", "cpu", b.options.CPU)
		} else {
			b.log.Warnw("cpu affinity unsupported on this platform, thread locked only", "cpu", b.options.CPU)
		}
	}

	b.log.Infow(
		"warming up",
		"rounds", b.options.WarmupRounds, "iterations", b.options.Iterations,
		"buffer_size", buf.Len(), "memory", buf.Memory(), "pinnable", buf.Pinnable(),
		"tick_hz", b.clock.Frequency(),
	)
	if err := b.Warmup(ctx, buf); err != nil {
		return nil, b.fail(err)
	}

	runs = make([]domain.Run, 0, b.options.Runs)
	for i := 0; i < b.options.Runs; i++ {
		run, err := b.Measure(ctx, buf)
		if err != nil {
			return runs, b.fail(err)
		}
		runs = append(runs, run)

		if err := b.reporter.Run(run); err != nil {
			return runs, validation.NewBenchError(validation.ErrorReport, "report run", err)
		}

		second, third := run.Ratios()
		b.log.Debugw(
			"run measured", "run", i,
			string(run.Samples[0].Variant), run.Samples[0].Ticks,
			string(run.Samples[1].Variant), run.Samples[1].Ticks,
			string(run.Samples[2].Variant), run.Samples[2].Ticks,
			"ratio_second", second, "ratio_third", third,
		)
	}

	return runs, nil
}

func (b *Bench) verify(phase Phase, checksums [domain.VariantCount]domain.Checksum) error {
	if checksums[0] == checksums[1] && checksums[1] == checksums[2] {
		return nil
	}

	mismatch := &MismatchError{Phase: phase, Checksums: checksums}
	for i, v := range b.variants {
		mismatch.Variants[i] = v.Name
	}
	return mismatch
}

// fail reports a mismatch to the output and classifies the error.
func (b *Bench) fail(err error) error {
	mismatch, ok := err.(*MismatchError)
	if !ok {
		return err
	}

	if rerr := b.reporter.Mismatch(mismatch.Variants, mismatch.Checksums); rerr != nil {
		b.log.Errorw("failed to report mismatch", "error", rerr)
	}
	return validation.NewBenchError(validation.ErrorMismatch, string(mismatch.Phase), mismatch)
}
