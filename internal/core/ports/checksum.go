package ports

// Defines the interface for fingerprinting buffer contents.
type FingerprintPort interface {
	// Calculates the fingerprint of data.
	// Hash outputs wider than 64 bits are truncated.
	Calculate(data []byte) uint64

	// Reports whether data matches the expected fingerprint.
	Verify(data []byte, expected uint64) bool

	// Returns the size in bytes of the untruncated hash output.
	Size() uint8

	// Returns the algorithm name.
	Name() string
}
