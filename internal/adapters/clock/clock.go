// Package clock provides the tick sources used to time checksum routines.
package clock

import (
	"sync/atomic"
	"time"
)

// NanosPerSecond is the frequency of the Monotonic clock.
const NanosPerSecond = int64(time.Second)

// Monotonic reads the runtime's monotonic clock. One tick is one nanosecond.
type Monotonic struct {
	epoch time.Time
}

func NewMonotonic() *Monotonic {
	return &Monotonic{epoch: time.Now()}
}

// Now returns the nanoseconds elapsed since the clock was created. time.Since
// uses the monotonic reading, so wall clock adjustments do not affect it.
func (m *Monotonic) Now() int64 {
	return int64(time.Since(m.epoch))
}

func (m *Monotonic) Frequency() int64 {
	return NanosPerSecond
}

// Manual is a clock that only moves when told to. It advances by Step on every
// reading, which makes each timed call last exactly Step ticks.
type Manual struct {
	ticks atomic.Int64
	Step  int64
}

func (m *Manual) Now() int64 {
	return m.ticks.Add(m.Step)
}

func (m *Manual) Frequency() int64 {
	return NanosPerSecond
}
