//go:build linux

package system

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func allowedCPU(t *testing.T) int {
	t.Helper()

	var set unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &set))
	for cpu := 0; cpu < 1024; cpu++ {
		if set.IsSet(cpu) {
			return cpu
		}
	}
	t.Skip("no cpu in affinity mask")
	return -1
}

func TestCPUAllowed(t *testing.T) {
	var set unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &set))

	for cpu := 0; cpu < 1024; cpu++ {
		allowed, err := CPUAllowed(cpu)
		require.NoError(t, err)
		assert.Equal(t, set.IsSet(cpu), allowed, "cpu %d", cpu)
	}

	allowed, err := CPUAllowed(-1)
	require.NoError(t, err)
	assert.False(t, allowed)
}

func TestPinToCPU(t *testing.T) {
	// Keep every affinity read on the thread that PinToCPU changes.
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	cpu := allowedCPU(t)

	var before unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &before))

	unpin, err := PinToCPU(cpu)
	require.NoError(t, err)

	var pinned unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &pinned))
	assert.Equal(t, 1, pinned.Count())
	assert.True(t, pinned.IsSet(cpu))

	require.NoError(t, unpin())

	var after unix.CPUSet
	require.NoError(t, unix.SchedGetaffinity(0, &after))
	assert.Equal(t, before, after)
}
