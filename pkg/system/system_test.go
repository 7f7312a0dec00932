package system

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunWithContext(t *testing.T) {
	require.NoError(t, RunWithContext(context.Background(), func(context.Context) error { return nil }))

	boom := errors.New("boom")
	assert.ErrorIs(t, RunWithContext(context.Background(), func(context.Context) error { return boom }), boom)
}

func TestRunWithContextCancelledBeforeStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := RunWithContext(ctx, func(context.Context) error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestRunWithContextDoesNotWaitForBlockedOperation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	release := make(chan struct{})
	defer close(release)

	err := RunWithContext(ctx, func(context.Context) error {
		<-release
		return nil
	})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestWaitForKey(t *testing.T) {
	require.NoError(t, WaitForKey(context.Background(), strings.NewReader("\n")))
	require.NoError(t, WaitForKey(context.Background(), strings.NewReader("")), "end of input counts as a key")
	assert.ErrorIs(t, WaitForKey(context.Background(), strings.NewReader("\x03")), ErrInterrupted)
}

func TestWaitForKeyCancelled(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	assert.ErrorIs(t, WaitForKey(ctx, r), context.Canceled)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestWaitForKeyReadError(t *testing.T) {
	err := WaitForKey(context.Background(), failingReader{})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInterrupted)
}

func TestPinToCPUDisabled(t *testing.T) {
	unpin, err := PinToCPU(-1)
	require.NoError(t, err)
	assert.NoError(t, unpin())
}
