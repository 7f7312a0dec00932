package domain

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(ticks ...int64) Run {
	var r Run
	for i, t := range ticks {
		r.Samples[i] = Sample{Checksum: byte(i), Ticks: t}
	}
	return r
}

func TestRatios(t *testing.T) {
	tests := []struct {
		name          string
		run           Run
		second, third float64
	}{
		{"even", run(100, 100, 100), 1, 1},
		{"slower", run(200, 300, 500), 1.5, 2.5},
		{"zero baseline", run(0, 10, 10), 0, 0},
		{"negative baseline", run(-5, 10, 10), 0, 0},
		{"zero others", run(10, 0, 0), 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			second, third := tt.run.Ratios()
			assert.Equal(t, tt.second, second)
			assert.Equal(t, tt.third, third)
		})
	}
}

func TestRatiosFinite(t *testing.T) {
	for _, base := range []int64{1, 3, 1 << 40} {
		second, third := run(base, math.MaxInt64, 1).Ratios()
		for _, v := range []float64{second, third} {
			assert.False(t, math.IsInf(v, 0) || math.IsNaN(v))
			assert.GreaterOrEqual(t, v, 0.0)
		}
	}
}

func TestChecksums(t *testing.T) {
	assert.Equal(t, [VariantCount]Checksum{0, 1, 2}, run(1, 1, 1).Checksums())
}

func TestBufferRelease(t *testing.T) {
	calls := 0
	fail := errors.New("unmap failed")
	buf := NewBuffer([]byte{1, 2, 3}, MemoryMapped, func() error {
		calls++
		return fail
	})

	assert.Equal(t, 3, buf.Len())
	assert.False(t, buf.Pinnable())

	assert.ErrorIs(t, buf.Release(), fail)
	assert.ErrorIs(t, buf.Release(), fail)
	assert.Equal(t, 1, calls)
	assert.Nil(t, buf.Bytes())
}

func TestHeapBuffer(t *testing.T) {
	buf := NewBuffer(make([]byte, 8), MemoryHeap, nil)

	assert.True(t, buf.Pinnable())
	assert.NoError(t, buf.Release())
}
