// Package compression wraps zstd for the run archive. Every call to Compress
// produces one complete zstd frame, so compressed outputs can be appended to a
// file and later decoded as a single stream.
package compression

import (
	"fmt"
	"sync"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/klauspost/compress/zstd"
)

// ZstdCompression implements CompressionPort using the zstd compression algorithm.
// It is safe for concurrent use.
type ZstdCompression struct {
	level   uint8         // Current encoder level.
	mu      sync.RWMutex  // Protects concurrent access to compression state.
	closed  bool          // Set once Close has released the encoder and decoder.
	decoder *zstd.Decoder // Decodes one or more concatenated frames.
	encoder *zstd.Encoder // Encodes a whole buffer into one frame.
}

// Encoder levels map directly onto zstd.EncoderLevel.
const (
	FastestLevel = uint8(zstd.SpeedFastest)
	DefaultLevel = uint8(zstd.SpeedDefault)
	BestLevel    = uint8(zstd.SpeedBestCompression)
)

// NewZstdCompression creates a zstd compressor with the given options.
//
// Returns an error if:
// - The options are out of range
// - The encoder or decoder initialization fails
func NewZstdCompression(opts *domain.CompressionOptions) (*ZstdCompression, error) {
	if opts == nil {
		opts = DefaultOptions()
	}

	if err := Validate(opts); err != nil {
		return nil, err
	}

	encoder, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderLevel(zstd.EncoderLevel(opts.Level)),
		zstd.WithEncoderConcurrency(concurrency(opts.EncoderConcurrency)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create encoder: %w", err)
	}

	decoder, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(concurrency(opts.DecoderConcurrency)))
	if err != nil {
		encoder.Close()
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}

	return &ZstdCompression{encoder: encoder, decoder: decoder, level: opts.Level}, nil
}

// Compress encodes data as a single zstd frame. Unlike a general purpose
// compressor it never returns the input unchanged, so the archive stays a
// valid zstd stream even for tiny records.
func (z *ZstdCompression) Compress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.closed {
		return nil, fmt.Errorf("compression failed: compressor is closed")
	}

	return z.encoder.EncodeAll(data, nil), nil
}

// Decompress decodes every frame in data and returns the concatenated output.
//
// Returns an error if the input is not valid zstd data.
func (z *ZstdCompression) Decompress(data []byte) ([]byte, error) {
	z.mu.RLock()
	defer z.mu.RUnlock()

	if z.closed {
		return nil, fmt.Errorf("decompression failed: compressor is closed")
	}

	decompressed, err := z.decoder.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("decompression failed: %w", err)
	}

	return decompressed, nil
}

// Level returns the current compression level.
func (z *ZstdCompression) Level() uint8 {
	z.mu.RLock()
	defer z.mu.RUnlock()
	return z.level
}

// Close releases the encoder and decoder. Further calls are no-ops.
func (z *ZstdCompression) Close() error {
	z.mu.Lock()
	defer z.mu.Unlock()

	if z.closed {
		return nil
	}
	z.closed = true

	if err := z.encoder.Close(); err != nil {
		z.decoder.Close()
		return fmt.Errorf("error closing encoder : %w", err)
	}

	z.decoder.Close()
	return nil
}
