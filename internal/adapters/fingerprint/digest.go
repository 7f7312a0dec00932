package fingerprint

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/binary"
	"hash"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
)

// digest truncates a cryptographic hash to its leading 64 bits.
type digest struct {
	name    domain.FingerprintAlgorithm
	size    uint8
	newHash func() hash.Hash
}

func newDigest(name domain.FingerprintAlgorithm) *digest {
	if name == SHA1 {
		return &digest{name: name, size: sha1.Size, newHash: sha1.New}
	}
	return &digest{name: name, size: sha256.Size, newHash: sha256.New}
}

func (d *digest) Calculate(data []byte) uint64 {
	h := d.newHash()
	h.Write(data)

	sum := h.Sum(nil)
	return binary.BigEndian.Uint64(sum[:8])
}

func (d *digest) Verify(data []byte, expected uint64) bool {
	return d.Calculate(data) == expected
}

func (d *digest) Size() uint8 {
	return d.size
}

func (d *digest) Name() string {
	return string(d.name)
}
