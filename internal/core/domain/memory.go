package domain

const (
	// MemoryHeap is an ordinary Go heap allocation.
	MemoryHeap MemoryKind = "heap"

	// MemoryMapped is an anonymous private memory mapping.
	MemoryMapped MemoryKind = "mmap"
)

const (
	// SourceChaCha is a ChaCha20 keystream keyed from the seed.
	SourceChaCha ByteSource = "chacha"

	// SourcePCG is the PCG generator from math/rand/v2.
	SourcePCG ByteSource = "pcg"
)
