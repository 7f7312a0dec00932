package ports

import (
	"github.com/iamNilotpal/spanbench/internal/core/domain"
)

// ReporterPort writes benchmark results as they are produced.
type ReporterPort interface {
	// Writes the result of one timed run.
	Run(run domain.Run) error

	// Writes the diverging checksums of a failed verification. names[i] is
	// the access pattern that produced checksums[i].
	Mismatch(
		names [domain.VariantCount]domain.VariantName, checksums [domain.VariantCount]domain.Checksum,
	) error

	// Flushes and releases the output.
	Close() error
}

// ArchivePort persists reports across processes.
type ArchivePort interface {
	Append(report *domain.Report) error
	ReadAll() ([]domain.Report, error)
	Close() error
}
