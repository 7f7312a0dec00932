package compression

import (
	"fmt"
	"runtime"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
)

// Returns CompressionOptions suited to small archive frames: the default
// level and a single encoder and decoder goroutine.
func DefaultOptions() *domain.CompressionOptions {
	return &domain.CompressionOptions{
		Level:              DefaultLevel,
		EncoderConcurrency: 1,
		DecoderConcurrency: 1,
	}
}

// Checks that the level and concurrency settings are within their allowed ranges.
func Validate(input *domain.CompressionOptions) error {
	if input.Level < FastestLevel || input.Level > BestLevel {
		return fmt.Errorf("compression level must be between %d and %d, got %d", FastestLevel, BestLevel, input.Level)
	}

	if int(input.EncoderConcurrency) > runtime.NumCPU() {
		return fmt.Errorf(
			"encoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.EncoderConcurrency,
		)
	}

	if int(input.DecoderConcurrency) > runtime.NumCPU() {
		return fmt.Errorf(
			"decoder concurrency must be between 0 and %d, got %d", runtime.NumCPU(), input.DecoderConcurrency,
		)
	}

	return nil
}

func concurrency(n uint8) int {
	if n == 0 {
		return runtime.NumCPU()
	}
	return int(n)
}
