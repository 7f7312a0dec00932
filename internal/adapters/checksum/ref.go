package checksum

import "unsafe"

// Ref offsets a reference to the first element with unsafe.Add. The reference
// stays visible to the collector, so no pinning is needed.
func Ref(data []byte, iterations int) byte {
	length := len(data)
	if length == 0 || iterations <= 0 {
		return 0
	}

	p := unsafe.Pointer(unsafe.SliceData(data))
	var x byte

	for i := 0; i < iterations; i++ {
		for idx := 0; idx < length; idx++ {
			x ^= *(*byte)(unsafe.Add(p, idx))
		}
	}

	return x
}
