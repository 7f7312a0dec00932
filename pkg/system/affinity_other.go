//go:build !linux

package system

import "runtime"

// PinToCPU locks the calling goroutine to its OS thread. Thread affinity is
// not available on this platform, so cpu only decides whether to lock.
func PinToCPU(cpu int) (func() error, error) {
	if cpu < 0 {
		return func() error { return nil }, nil
	}

	runtime.LockOSThread()
	return func() error {
		runtime.UnlockOSThread()
		return nil
	}, nil
}

// CPUAllowed reports whether cpu is a valid logical CPU index.
func CPUAllowed(cpu int) (bool, error) {
	return cpu >= 0 && cpu < runtime.NumCPU(), nil
}

// AffinitySupported reports whether PinToCPU can restrict threads on this platform.
const AffinitySupported = false
