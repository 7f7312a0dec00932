package domain

import "time"

// VariantCount is the size of the closed set of access patterns.
const VariantCount = 3

// Sample is one timed invocation of a checksum routine.
type Sample struct {
	Variant  VariantName
	Checksum Checksum

	// Ticks is the elapsed time of the call in clock ticks.
	Ticks int64
}

// Run holds one timed invocation of every variant, in variant order.
// The first sample is the baseline for both ratios.
type Run struct {
	Samples [VariantCount]Sample
}

// Checksums returns the checksum of each sample in variant order.
func (r Run) Checksums() [VariantCount]Checksum {
	var out [VariantCount]Checksum
	for i, s := range r.Samples {
		out[i] = s.Checksum
	}
	return out
}

// Ratios returns the ticks of the second and third samples divided by the
// ticks of the first. Both are 0 when the baseline is not positive, so the
// result is always finite and non-negative.
func (r Run) Ratios() (second, third float64) {
	base := r.Samples[0].Ticks
	if base <= 0 {
		return 0, 0
	}
	return ratio(r.Samples[1].Ticks, base), ratio(r.Samples[2].Ticks, base)
}

func ratio(ticks, base int64) float64 {
	if ticks <= 0 {
		return 0
	}
	return float64(ticks) / float64(base)
}

// HostInfo describes the machine a report was produced on.
type HostInfo struct {
	CPUModel     string   `json:"cpu_model,omitempty"`
	LogicalCores int      `json:"logical_cores,omitempty"`
	TotalMemory  uint64   `json:"total_memory,omitempty"`
	CPUFeatures  []string `json:"cpu_features,omitempty"`
}

// Report is the outcome of one benchmark process.
type Report struct {
	StartedAt  time.Time  `json:"started_at"`
	PID        int        `json:"pid"`
	BufferSize int        `json:"buffer_size"`
	Iterations int        `json:"iterations"`
	Seed       uint64     `json:"seed"`
	Source     ByteSource `json:"source"`
	Memory     MemoryKind `json:"memory"`

	// Fingerprint of the buffer contents, computed with FingerprintAlgorithm.
	FingerprintAlgorithm FingerprintAlgorithm `json:"fingerprint_algorithm"`
	Fingerprint          uint64               `json:"fingerprint"`

	Host HostInfo `json:"host"`
	Runs []Run    `json:"runs"`
}
