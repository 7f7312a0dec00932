package checksum

import (
	"runtime"
	"unsafe"
)

// Fixed pins the buffer and walks it through its integer base address.
//
// The address is held as a uintptr for the whole pass, which the collector does
// not treat as a reference, so the backing array is pinned until the pass ends.
// Memory outside the Go heap is ignored by the pinner and never moves.
func Fixed(data []byte, iterations int) byte {
	length := len(data)
	if length == 0 || iterations <= 0 {
		return 0
	}

	first := unsafe.SliceData(data)

	var pinner runtime.Pinner
	pinner.Pin(first)
	defer pinner.Unpin()

	base := uintptr(unsafe.Pointer(first))
	var x byte

	for i := 0; i < iterations; i++ {
		for idx := 0; idx < length; idx++ {
			// Integer address arithmetic is the pattern under test; unsafe.Add here would make this Ref.
			x ^= *(*byte)(unsafe.Pointer(base + uintptr(idx)))
		}
	}

	runtime.KeepAlive(data)
	return x
}
