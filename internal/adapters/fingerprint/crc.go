package fingerprint

import (
	"hash/crc32"
	"hash/crc64"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
)

type crc32IEEE struct {
	table *crc32.Table
}

func newCRC32IEEE() *crc32IEEE {
	return &crc32IEEE{table: crc32.MakeTable(crc32.IEEE)}
}

func (c *crc32IEEE) Calculate(data []byte) uint64 {
	return uint64(crc32.Checksum(data, c.table))
}

func (c *crc32IEEE) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc32IEEE) Size() uint8 {
	return crc32.Size
}

func (c *crc32IEEE) Name() string {
	return string(CRC32IEEE)
}

// crc64Sum covers both CRC64 polynomials.
type crc64Sum struct {
	name  domain.FingerprintAlgorithm
	table *crc64.Table
}

func newCRC64(name domain.FingerprintAlgorithm) *crc64Sum {
	poly := uint64(crc64.ECMA)
	if name == CRC64ISO {
		poly = crc64.ISO
	}
	return &crc64Sum{name: name, table: crc64.MakeTable(poly)}
}

func (c *crc64Sum) Calculate(data []byte) uint64 {
	return crc64.Checksum(data, c.table)
}

func (c *crc64Sum) Verify(data []byte, expected uint64) bool {
	return c.Calculate(data) == expected
}

func (c *crc64Sum) Size() uint8 {
	return crc64.Size
}

func (c *crc64Sum) Name() string {
	return string(c.name)
}
