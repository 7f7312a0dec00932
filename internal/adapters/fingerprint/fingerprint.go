// Package fingerprint hashes the benchmark buffer so that reports produced by
// different processes can be checked for identical input.
package fingerprint

import (
	"fmt"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/iamNilotpal/spanbench/internal/core/ports"
)

const (
	// CRC32IEEE uses the IEEE polynomial for CRC32 fingerprints.
	CRC32IEEE domain.FingerprintAlgorithm = "crc32-ieee"

	// CRC64ISO uses the ISO polynomial for CRC64 fingerprints.
	CRC64ISO domain.FingerprintAlgorithm = "crc64-iso"

	// CRC64ECMA uses the ECMA polynomial for CRC64 fingerprints.
	CRC64ECMA domain.FingerprintAlgorithm = "crc64-ecma"

	// SHA1 provides SHA-1 digests truncated to their first 8 bytes.
	SHA1 domain.FingerprintAlgorithm = "sha1"

	// SHA256 provides SHA-256 digests truncated to their first 8 bytes.
	SHA256 domain.FingerprintAlgorithm = "sha256"
)

// DefaultAlgorithm is used when none is configured.
const DefaultAlgorithm = CRC64ECMA

func Validate(alg domain.FingerprintAlgorithm) error {
	switch alg {
	case CRC32IEEE, CRC64ISO, CRC64ECMA, SHA1, SHA256:
		return nil
	default:
		return fmt.Errorf("unsupported fingerprint algorithm: %s", alg)
	}
}

// Returns the fingerprinter for alg. An empty name selects DefaultAlgorithm.
func New(alg domain.FingerprintAlgorithm) (ports.FingerprintPort, error) {
	if alg == "" {
		alg = DefaultAlgorithm
	}

	switch alg {
	case CRC32IEEE:
		return newCRC32IEEE(), nil
	case CRC64ISO:
		return newCRC64(CRC64ISO), nil
	case CRC64ECMA:
		return newCRC64(CRC64ECMA), nil
	case SHA1:
		return newDigest(SHA1), nil
	case SHA256:
		return newDigest(SHA256), nil
	default:
		return nil, Validate(alg)
	}
}
