// Package report writes benchmark results to an output stream.
package report

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/spanbench/internal/core/ports"
	"github.com/iamNilotpal/spanbench/pkg/pool"
)

// Format selects how runs are rendered.
type Format string

const (
	// FormatText writes one "a | b | c | r1 | r2" line per run.
	FormatText Format = "text"

	// FormatJSON writes one JSON object per line per run.
	FormatJSON Format = "json"
)

const lineBufferSize = 256

func Validate(format Format) error {
	switch format {
	case FormatText, FormatJSON:
		return nil
	default:
		return fmt.Errorf("unsupported report format: %s", format)
	}
}

// New returns a reporter writing format to w. An empty format selects text.
func New(format Format, w io.Writer) (ports.ReporterPort, error) {
	if format == "" {
		format = FormatText
	}

	if err := Validate(format); err != nil {
		return nil, err
	}

	buffers := pool.NewBufferPool(lineBufferSize)
	if format == FormatJSON {
		return &jsonReporter{w: w, buffers: buffers}, nil
	}
	return &textReporter{w: w, buffers: buffers}, nil
}

// flusher is implemented by buffered outputs such as *bufio.Writer.
type flusher interface {
	Flush() error
}

func flush(w io.Writer) error {
	if f, ok := w.(flusher); ok {
		return f.Flush()
	}
	return nil
}
