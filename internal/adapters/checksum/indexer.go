package checksum

// Indexer reads every byte through ordinary slice indexing. The loop bound is
// taken once before the passes, as the other routines do, so the compiler keeps
// the per-element bounds check.
func Indexer(data []byte, iterations int) byte {
	length := len(data)
	var x byte

	for i := 0; i < iterations; i++ {
		for idx := 0; idx < length; idx++ {
			x ^= data[idx]
		}
	}

	return x
}
