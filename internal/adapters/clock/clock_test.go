package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMonotonic(t *testing.T) {
	c := NewMonotonic()

	first := c.Now()
	second := c.Now()
	assert.GreaterOrEqual(t, second, first)
	assert.Equal(t, int64(1_000_000_000), c.Frequency())
}

func TestManual(t *testing.T) {
	c := &Manual{Step: 3}

	start := c.Now()
	assert.Equal(t, int64(3), c.Now()-start)

	assert.Equal(t, int64(9), c.Now())
	assert.Equal(t, NanosPerSecond, c.Frequency())
}
