package compression

import (
	"bytes"
	"testing"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCodec(t *testing.T) *ZstdCompression {
	t.Helper()

	z, err := NewZstdCompression(nil)
	require.NoError(t, err)
	t.Cleanup(func() { require.NoError(t, z.Close()) })
	return z
}

func TestRoundTrip(t *testing.T) {
	z := newCodec(t)

	for _, input := range [][]byte{{}, []byte("x"), bytes.Repeat([]byte("spanbench "), 500)} {
		frame, err := z.Compress(input)
		require.NoError(t, err)
		assert.NotEqual(t, input, frame, "tiny inputs must still be framed")

		out, err := z.Decompress(frame)
		require.NoError(t, err)
		assert.Equal(t, len(input), len(out))
		assert.True(t, bytes.Equal(input, out))
	}
}

func TestConcatenatedFrames(t *testing.T) {
	z := newCodec(t)

	var stream []byte
	for _, part := range []string{"first|", "second|", "third"} {
		frame, err := z.Compress([]byte(part))
		require.NoError(t, err)
		stream = append(stream, frame...)
	}

	out, err := z.Decompress(stream)
	require.NoError(t, err)
	assert.Equal(t, "first|second|third", string(out))
}

func TestDecompressGarbage(t *testing.T) {
	z := newCodec(t)

	_, err := z.Decompress([]byte("not zstd at all"))
	assert.Error(t, err)
}

func TestClosed(t *testing.T) {
	z, err := NewZstdCompression(nil)
	require.NoError(t, err)
	require.NoError(t, z.Close())
	require.NoError(t, z.Close())

	_, err = z.Compress([]byte("x"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(DefaultOptions()))
	assert.Error(t, Validate(&domain.CompressionOptions{Level: 0}))
	assert.Error(t, Validate(&domain.CompressionOptions{Level: BestLevel + 1}))
	assert.Error(t, Validate(&domain.CompressionOptions{Level: DefaultLevel, EncoderConcurrency: 255}))
}
