package system

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupted is returned when the operator answers the attach prompt with Ctrl-C.
var ErrInterrupted = errors.New("interrupted at attach prompt")

const ctrlC = 0x03

// Blocks until one byte can be read from in, so an external profiler can be
// attached to the process first. When in is a terminal it is switched to raw
// mode, which makes any single key press count and keeps it from being echoed.
// End of input is treated as a key press.
func WaitForKey(ctx context.Context, in io.Reader) error {
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		state, err := term.MakeRaw(fd)
		if err != nil {
			return fmt.Errorf("error switching terminal to raw mode : %w", err)
		}
		defer term.Restore(fd, state)
	}

	return RunWithContext(ctx, func(context.Context) error {
		return readKey(in)
	})
}

func readKey(in io.Reader) error {
	var key [1]byte
	n, err := in.Read(key[:])
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("error reading key : %w", err)
	}
	if n == 1 && key[0] == ctrlC {
		return ErrInterrupted
	}
	return nil
}
