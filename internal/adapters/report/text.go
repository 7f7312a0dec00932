package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/iamNilotpal/spanbench/pkg/pool"
)

type textReporter struct {
	w       io.Writer
	buffers *pool.BufferPool
}

// Run writes "<t1> | <t2> | <t3> | <t2/t1> | <t3/t1>" with both ratios to
// three decimal places.
func (r *textReporter) Run(run domain.Run) error {
	buf := r.buffers.Get()
	defer r.buffers.Put(buf)

	AppendRunLine(buf, run)
	return r.write(buf)
}

// Mismatch writes "Mismatched checksum (<a> | <b> | <c>)" in variant order.
func (r *textReporter) Mismatch(
	_ [domain.VariantCount]domain.VariantName, checksums [domain.VariantCount]domain.Checksum,
) error {
	buf := r.buffers.Get()
	defer r.buffers.Put(buf)

	buf.WriteString("Mismatched checksum (")
	for i, c := range checksums {
		if i > 0 {
			buf.WriteString(" | ")
		}
		buf.WriteString(strconv.Itoa(int(c)))
	}
	buf.WriteString(")\n")
	return r.write(buf)
}

func (r *textReporter) Close() error {
	return flush(r.w)
}

func (r *textReporter) write(buf *bytes.Buffer) error {
	if _, err := r.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing report line : %w", err)
	}
	return nil
}

// AppendRunLine appends the text rendering of run, newline included.
func AppendRunLine(buf *bytes.Buffer, run domain.Run) {
	second, third := run.Ratios()

	var scratch [32]byte
	for _, s := range run.Samples {
		buf.Write(strconv.AppendInt(scratch[:0], s.Ticks, 10))
		buf.WriteString(" | ")
	}
	buf.Write(strconv.AppendFloat(scratch[:0], second, 'f', 3, 64))
	buf.WriteString(" | ")
	buf.Write(strconv.AppendFloat(scratch[:0], third, 'f', 3, 64))
	buf.WriteByte('\n')
}

// WriteHistory renders archived reports: a header line per report followed
// by its run lines.
func WriteHistory(w io.Writer, reports []domain.Report) error {
	var buf bytes.Buffer
	for _, rep := range reports {
		fmt.Fprintf(&buf, "# %s pid=%d size=%d iterations=%d seed=%d source=%s memory=%s %s=%016x\n",
			rep.StartedAt.Format(time.RFC3339), rep.PID, rep.BufferSize, rep.Iterations, rep.Seed,
			rep.Source, rep.Memory, rep.FingerprintAlgorithm, rep.Fingerprint)
		for _, run := range rep.Runs {
			AppendRunLine(&buf, run)
		}
	}

	if _, err := w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing history : %w", err)
	}
	return flush(w)
}
