//go:build linux

package system

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

// PinToCPU locks the calling goroutine to its OS thread and restricts that
// thread to cpu. The returned function undoes both. A negative cpu is a no-op.
func PinToCPU(cpu int) (func() error, error) {
	if cpu < 0 {
		return func() error { return nil }, nil
	}

	runtime.LockOSThread()

	var previous unix.CPUSet
	if err := unix.SchedGetaffinity(0, &previous); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("error reading cpu affinity : %w", err)
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return nil, fmt.Errorf("error pinning thread to cpu %d : %w", cpu, err)
	}

	return func() error {
		defer runtime.UnlockOSThread()
		if err := unix.SchedSetaffinity(0, &previous); err != nil {
			return fmt.Errorf("error restoring cpu affinity : %w", err)
		}
		return nil
	}, nil
}

// CPUAllowed reports whether cpu is in the affinity mask of the calling
// thread, which is the set PinToCPU can restrict the thread to.
func CPUAllowed(cpu int) (bool, error) {
	if cpu < 0 {
		return false, nil
	}

	var set unix.CPUSet
	if err := unix.SchedGetaffinity(0, &set); err != nil {
		return false, fmt.Errorf("error reading cpu affinity : %w", err)
	}
	return set.IsSet(cpu), nil
}

// AffinitySupported reports whether PinToCPU can restrict threads on this platform.
const AffinitySupported = true
