package buffer

import (
	"fmt"

	"github.com/edsrzf/mmap-go"
	"github.com/iamNilotpal/spanbench/internal/core/domain"
)

// allocate returns size zeroed bytes and the function that frees them.
// Heap memory needs no release and returns a nil function.
func allocate(memory domain.MemoryKind, size int) ([]byte, func() error, error) {
	switch memory {
	case domain.MemoryHeap:
		return make([]byte, size), nil, nil

	case domain.MemoryMapped:
		// Anonymous private pages are zero filled and never touched by the
		// Go runtime, so the region keeps its address until it is unmapped.
		region, err := mmap.MapRegion(nil, size, mmap.RDWR, mmap.ANON, 0)
		if err != nil {
			return nil, nil, fmt.Errorf("error mapping %d bytes : %w", size, err)
		}
		return region, region.Unmap, nil

	default:
		return nil, nil, fmt.Errorf("unsupported memory kind %q", memory)
	}
}
