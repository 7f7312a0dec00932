package domain

// Checksum is the running XOR of every buffer byte over all passes.
type Checksum = byte

// ChecksumFunc computes the checksum of data repeated iterations times.
// Every implementation must return the same value for the same input and
// may differ only in how it reads the bytes.
type ChecksumFunc func(data []byte, iterations int) Checksum

// VariantName identifies one memory access pattern.
type VariantName string

// Variant pairs an access pattern with its routine.
type Variant struct {
	Name VariantName
	Func ChecksumFunc
}

// FingerprintAlgorithm names a content hash used to fingerprint the buffer.
type FingerprintAlgorithm string
