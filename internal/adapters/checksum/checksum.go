// Package checksum implements the three memory access patterns compared by the
// benchmark. Each routine XORs every byte of a buffer, repeated over a number of
// passes, and returns the accumulated byte.
package checksum

import (
	"fmt"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
)

const (
	// FixedVariant reads through integer address arithmetic on a pinned buffer.
	FixedVariant domain.VariantName = "fixed"

	// IndexerVariant reads through bounds-checked slice indexing.
	IndexerVariant domain.VariantName = "indexer"

	// RefVariant reads by offsetting a reference to the first element.
	RefVariant domain.VariantName = "ref"
)

// DefaultIterations is the number of passes over the buffer per call.
const DefaultIterations = 1_000_000

var variants = [domain.VariantCount]domain.Variant{
	{Name: FixedVariant, Func: Fixed},
	{Name: IndexerVariant, Func: Indexer},
	{Name: RefVariant, Func: Ref},
}

// Returns the closed set of access patterns. The first entry is the baseline
// the others are compared against.
func Variants() [domain.VariantCount]domain.Variant {
	return variants
}

// Lookup resolves a variant by name.
func Lookup(name domain.VariantName) (domain.Variant, error) {
	for _, v := range variants {
		if v.Name == name {
			return v, nil
		}
	}
	return domain.Variant{}, fmt.Errorf("unknown access pattern: %s", name)
}

// Expected computes the checksum without repeating passes: the XOR of the
// buffer for an odd number of iterations and 0 for an even one.
func Expected(data []byte, iterations int) domain.Checksum {
	if iterations <= 0 || iterations%2 == 0 {
		return 0
	}
	var x byte
	for _, b := range data {
		x ^= b
	}
	return x
}
