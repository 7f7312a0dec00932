package system

import (
	"context"
)

// Runs operation and waits for either its result or the cancellation of ctx.
//
// Operations that block in the kernel, such as a read from a terminal, cannot
// be interrupted. On cancellation the operation's own context is cancelled and
// RunWithContext returns ctx.Err() at once, leaving the goroutine to finish on
// its own. The result channel is buffered so that goroutine never blocks.
//
// Returns:
//   - nil if the operation completes successfully.
//   - the operation's error if it fails.
//   - ctx.Err() if ctx is done first.
func RunWithContext(ctx context.Context, operation func(context.Context) error) error {
	// Fast path: the caller was cancelled before we started.
	if err := ctx.Err(); err != nil {
		return err
	}

	opCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- operation(opCtx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}
