package report

import (
	"fmt"
	"io"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/iamNilotpal/spanbench/internal/serialize"
	"github.com/iamNilotpal/spanbench/pkg/pool"
)

type jsonReporter struct {
	w       io.Writer
	buffers *pool.BufferPool
}

type runLine struct {
	Ticks    map[domain.VariantName]int64   `json:"ticks"`
	Ratios   map[domain.VariantName]float64 `json:"ratios"`
	Checksum domain.Checksum                `json:"checksum"`
}

type mismatchLine struct {
	Mismatch map[domain.VariantName]domain.Checksum `json:"mismatch"`
}

// Run writes the ticks of every variant and the ratio of each non-baseline
// variant to the baseline.
func (r *jsonReporter) Run(run domain.Run) error {
	second, third := run.Ratios()

	line := runLine{
		Ticks:    make(map[domain.VariantName]int64, domain.VariantCount),
		Checksum: run.Samples[0].Checksum,
		Ratios: map[domain.VariantName]float64{
			run.Samples[1].Variant: second,
			run.Samples[2].Variant: third,
		},
	}
	for _, s := range run.Samples {
		line.Ticks[s.Variant] = s.Ticks
	}

	return r.write(line)
}

func (r *jsonReporter) Mismatch(
	names [domain.VariantCount]domain.VariantName, checksums [domain.VariantCount]domain.Checksum,
) error {
	line := mismatchLine{Mismatch: make(map[domain.VariantName]domain.Checksum, domain.VariantCount)}
	for i, name := range names {
		line.Mismatch[name] = checksums[i]
	}
	return r.write(line)
}

func (r *jsonReporter) Close() error {
	return flush(r.w)
}

func (r *jsonReporter) write(v any) error {
	data, err := serialize.MarshalJSON(v)
	if err != nil {
		return fmt.Errorf("error encoding report : %w", err)
	}

	buf := r.buffers.Get()
	defer r.buffers.Put(buf)

	buf.Write(data)
	buf.WriteByte('\n')
	if _, err := r.w.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("error writing report line : %w", err)
	}
	return nil
}
