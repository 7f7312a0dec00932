// Package domain defines the core types shared by the benchmark driver and its adapters.
package domain

import "sync"

// MemoryKind identifies where the bytes of a Buffer live.
type MemoryKind string

// ByteSource names a deterministic pseudo-random generator used to fill a Buffer.
type ByteSource string

// BufferOptions defines how the benchmark buffer is produced.
type BufferOptions struct {
	// Size is the number of bytes in the buffer.
	//
	// Default: 1024
	Size int

	// Seed feeds the pseudo-random source. Two buffers generated with the
	// same Size, Seed and Source hold identical bytes.
	//
	// Default: 42
	Seed uint64

	// Source selects the pseudo-random generator.
	Source ByteSource

	// Memory selects the backing memory. Mapped memory lives outside the Go
	// heap and is never moved or scanned by the runtime.
	Memory MemoryKind
}

// Buffer is the immutable byte sequence read by every checksum routine.
// It is owned by the entry routine and must be released when the run ends.
type Buffer struct {
	data    []byte
	memory  MemoryKind
	release func() error
	once    sync.Once
	err     error
}

// Wraps data as a Buffer. release is called at most once by Release and may be nil.
func NewBuffer(data []byte, memory MemoryKind, release func() error) *Buffer {
	return &Buffer{data: data, memory: memory, release: release}
}

// Returns the underlying bytes. Callers must not modify them.
func (b *Buffer) Bytes() []byte {
	return b.data
}

// Returns the number of bytes in the buffer.
func (b *Buffer) Len() int {
	return len(b.data)
}

// Returns the backing memory kind.
func (b *Buffer) Memory() MemoryKind {
	return b.memory
}

// Pinnable reports whether the bytes are Go heap memory that a runtime.Pinner
// can pin. Mapped memory is already immovable.
func (b *Buffer) Pinnable() bool {
	return b.memory != MemoryMapped
}

// Release frees the backing memory. It is safe to call more than once; the
// first result is returned on every call. The buffer must not be read afterwards.
func (b *Buffer) Release() error {
	b.once.Do(func() {
		if b.release != nil {
			b.err = b.release()
		}
		b.data = nil
	})
	return b.err
}
