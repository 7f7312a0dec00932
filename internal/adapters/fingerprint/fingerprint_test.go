package fingerprint

import (
	"testing"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownValues(t *testing.T) {
	tests := []struct {
		alg   domain.FingerprintAlgorithm
		input string
		want  uint64
		size  uint8
	}{
		{CRC32IEEE, "123456789", 0xcbf43926, 4},
		{CRC64ECMA, "123456789", 0x995dc9bbdf1939fa, 8},
		{CRC64ISO, "123456789", 0xb90956c775a41001, 8},
		{SHA1, "abc", 0xa9993e364706816a, 20},
		{SHA256, "abc", 0xba7816bf8f01cfea, 32},
	}

	for _, tt := range tests {
		t.Run(string(tt.alg), func(t *testing.T) {
			fp, err := New(tt.alg)
			require.NoError(t, err)

			assert.Equal(t, string(tt.alg), fp.Name())
			assert.Equal(t, tt.size, fp.Size())
			assert.Equal(t, tt.want, fp.Calculate([]byte(tt.input)))
			assert.True(t, fp.Verify([]byte(tt.input), tt.want))
			assert.False(t, fp.Verify([]byte(tt.input+"!"), tt.want))
		})
	}
}

func TestDefault(t *testing.T) {
	fp, err := New("")
	require.NoError(t, err)
	assert.Equal(t, string(DefaultAlgorithm), fp.Name())
}

func TestUnsupported(t *testing.T) {
	_, err := New("md5")
	assert.Error(t, err)
	assert.Error(t, Validate("md5"))
	assert.NoError(t, Validate(SHA256))
}
