package bench

import (
	"fmt"
	"strings"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
)

// Phase names the step of the benchmark a verification ran in.
type Phase string

const (
	PhaseWarmup  Phase = "warmup"
	PhaseMeasure Phase = "measure"
)

// MismatchError reports that the access patterns produced different checksums
// for the same buffer, which means one of them reads memory incorrectly.
type MismatchError struct {
	Phase     Phase
	Variants  [domain.VariantCount]domain.VariantName
	Checksums [domain.VariantCount]domain.Checksum
}

func (e *MismatchError) Error() string {
	parts := make([]string, domain.VariantCount)
	for i := range parts {
		parts[i] = fmt.Sprintf("%s=%d", e.Variants[i], e.Checksums[i])
	}
	return fmt.Sprintf("mismatched checksum during %s (%s)", e.Phase, strings.Join(parts, " | "))
}
