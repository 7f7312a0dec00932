// Package buffer produces the deterministic random buffer the benchmark reads.
package buffer

import (
	"github.com/iamNilotpal/spanbench/internal/core/domain"
	validation "github.com/iamNilotpal/spanbench/pkg/errors"
	"go.uber.org/multierr"
)

const (
	DefaultSize = 1024
	DefaultSeed = 42

	MinSize = 1
	MaxSize = 1 << 30 // 1GB
)

// Returns the options the benchmark runs with when nothing is configured.
func DefaultOptions() *domain.BufferOptions {
	return &domain.BufferOptions{
		Size:   DefaultSize,
		Seed:   DefaultSeed,
		Source: domain.SourceChaCha,
		Memory: domain.MemoryHeap,
	}
}

func Validate(opts *domain.BufferOptions) error {
	if opts == nil {
		return validation.Validationf("buffer", nil, "options are required")
	}

	if opts.Size < MinSize || opts.Size > MaxSize {
		return validation.Validationf("buffer.size", opts.Size, "must be between %d and %d bytes", MinSize, MaxSize)
	}

	switch opts.Source {
	case domain.SourceChaCha, domain.SourcePCG:
	default:
		return validation.Validationf("buffer.source", opts.Source, "unsupported byte source %q", opts.Source)
	}

	switch opts.Memory {
	case domain.MemoryHeap, domain.MemoryMapped:
	default:
		return validation.Validationf("buffer.memory", opts.Memory, "unsupported memory kind %q", opts.Memory)
	}

	return nil
}

// Generate allocates opts.Size bytes of the requested memory kind and fills
// them from the seeded source. The caller owns the buffer and must Release it.
func Generate(opts *domain.BufferOptions) (*domain.Buffer, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	data, release, err := allocate(opts.Memory, opts.Size)
	if err != nil {
		return nil, validation.NewBenchError(validation.ErrorBuffer, "allocate", err)
	}

	if err := fill(opts.Source, opts.Seed, data); err != nil {
		if release != nil {
			err = multierr.Append(err, release())
		}
		return nil, validation.NewBenchError(validation.ErrorBuffer, "fill", err)
	}

	return domain.NewBuffer(data, opts.Memory, release), nil
}
