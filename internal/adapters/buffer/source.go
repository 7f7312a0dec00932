package buffer

import (
	"encoding/binary"
	"fmt"
	"math/rand/v2"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"lukechampine.com/frand"
)

const (
	chachaRounds  = 20
	chachaBufSize = 1024

	// pcgIncrement is the fixed second PCG word. Only the seed varies.
	pcgIncrement = 0x9e3779b97f4a7c15
)

// fill overwrites dst with the byte stream of source seeded with seed.
func fill(source domain.ByteSource, seed uint64, dst []byte) error {
	switch source {
	case domain.SourceChaCha:
		return fillChaCha(seed, dst)
	case domain.SourcePCG:
		fillPCG(seed, dst)
		return nil
	default:
		return fmt.Errorf("unsupported byte source %q", source)
	}
}

// chachaKey spreads the seed over a 32-byte key: the seed little endian in
// the first word, the rest zero.
func chachaKey(seed uint64) []byte {
	key := make([]byte, 32)
	binary.LittleEndian.PutUint64(key, seed)
	return key
}

func fillChaCha(seed uint64, dst []byte) error {
	rng := frand.NewCustom(chachaKey(seed), chachaBufSize, chachaRounds)
	if _, err := rng.Read(dst); err != nil {
		return fmt.Errorf("error reading chacha stream : %w", err)
	}
	return nil
}

func fillPCG(seed uint64, dst []byte) {
	src := rand.NewPCG(seed, pcgIncrement)

	var word [8]byte
	for len(dst) > 0 {
		binary.LittleEndian.PutUint64(word[:], src.Uint64())
		n := copy(dst, word[:])
		dst = dst[n:]
	}
}
