package archive

import (
	"fmt"
	"strconv"
	"time"

	"github.com/iamNilotpal/spanbench/internal/adapters/checksum"
	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

// Field names of the archived record. 64-bit values that may exceed the
// float64 integer range (seed, fingerprint) are stored as strings.
const (
	fieldStartedAt   = "started_at"
	fieldPID         = "pid"
	fieldBufferSize  = "buffer_size"
	fieldIterations  = "iterations"
	fieldSeed        = "seed"
	fieldSource      = "source"
	fieldMemory      = "memory"
	fieldAlgorithm   = "fingerprint_algorithm"
	fieldFingerprint = "fingerprint"
	fieldHost        = "host"
	fieldRuns        = "runs"

	fieldCPUModel     = "cpu_model"
	fieldLogicalCores = "logical_cores"
	fieldTotalMemory  = "total_memory"
	fieldCPUFeatures  = "cpu_features"

	fieldSamples  = "samples"
	fieldVariant  = "variant"
	fieldChecksum = "checksum"
	fieldTicks    = "ticks"
)

func encodeReport(r *domain.Report) (*structpb.Struct, error) {
	if r == nil {
		return nil, fmt.Errorf("report is required")
	}

	features := make([]any, len(r.Host.CPUFeatures))
	for i, f := range r.Host.CPUFeatures {
		features[i] = f
	}

	runs := make([]any, len(r.Runs))
	for i, run := range r.Runs {
		samples := make([]any, len(run.Samples))
		for j, s := range run.Samples {
			samples[j] = map[string]any{
				fieldVariant:  string(s.Variant),
				fieldChecksum: int(s.Checksum),
				fieldTicks:    s.Ticks,
			}
		}
		runs[i] = map[string]any{fieldSamples: samples}
	}

	return structpb.NewStruct(map[string]any{
		fieldStartedAt:   r.StartedAt.UTC().Format(time.RFC3339Nano),
		fieldPID:         r.PID,
		fieldBufferSize:  r.BufferSize,
		fieldIterations:  r.Iterations,
		fieldSeed:        strconv.FormatUint(r.Seed, 10),
		fieldSource:      string(r.Source),
		fieldMemory:      string(r.Memory),
		fieldAlgorithm:   string(r.FingerprintAlgorithm),
		fieldFingerprint: strconv.FormatUint(r.Fingerprint, 16),
		fieldHost: map[string]any{
			fieldCPUModel:     r.Host.CPUModel,
			fieldLogicalCores: r.Host.LogicalCores,
			fieldTotalMemory:  r.Host.TotalMemory,
			fieldCPUFeatures:  features,
		},
		fieldRuns: runs,
	})
}

func decodeReport(s *structpb.Struct) (domain.Report, error) {
	var r domain.Report
	f := s.GetFields()

	startedAt, err := time.Parse(time.RFC3339Nano, f[fieldStartedAt].GetStringValue())
	if err != nil {
		return r, fmt.Errorf("invalid %s : %w", fieldStartedAt, err)
	}

	seed, err := strconv.ParseUint(f[fieldSeed].GetStringValue(), 10, 64)
	if err != nil {
		return r, fmt.Errorf("invalid %s : %w", fieldSeed, err)
	}

	fingerprint, err := strconv.ParseUint(f[fieldFingerprint].GetStringValue(), 16, 64)
	if err != nil {
		return r, fmt.Errorf("invalid %s : %w", fieldFingerprint, err)
	}

	r.StartedAt = startedAt
	r.PID = int(f[fieldPID].GetNumberValue())
	r.BufferSize = int(f[fieldBufferSize].GetNumberValue())
	r.Iterations = int(f[fieldIterations].GetNumberValue())
	r.Seed = seed
	r.Source = domain.ByteSource(f[fieldSource].GetStringValue())
	r.Memory = domain.MemoryKind(f[fieldMemory].GetStringValue())
	r.FingerprintAlgorithm = domain.FingerprintAlgorithm(f[fieldAlgorithm].GetStringValue())
	r.Fingerprint = fingerprint

	host := f[fieldHost].GetStructValue().GetFields()
	r.Host.CPUModel = host[fieldCPUModel].GetStringValue()
	r.Host.LogicalCores = int(host[fieldLogicalCores].GetNumberValue())
	r.Host.TotalMemory = uint64(host[fieldTotalMemory].GetNumberValue())
	for _, v := range host[fieldCPUFeatures].GetListValue().GetValues() {
		r.Host.CPUFeatures = append(r.Host.CPUFeatures, v.GetStringValue())
	}

	for i, rv := range f[fieldRuns].GetListValue().GetValues() {
		samples := rv.GetStructValue().GetFields()[fieldSamples].GetListValue().GetValues()
		if len(samples) != domain.VariantCount {
			return r, fmt.Errorf("run %d has %d samples, want %d", i, len(samples), domain.VariantCount)
		}

		var run domain.Run
		for j, sv := range samples {
			sf := sv.GetStructValue().GetFields()
			variant, err := checksum.Lookup(domain.VariantName(sf[fieldVariant].GetStringValue()))
			if err != nil {
				return r, fmt.Errorf("run %d sample %d : %w", i, j, err)
			}
			run.Samples[j] = domain.Sample{
				Variant:  variant.Name,
				Checksum: domain.Checksum(sf[fieldChecksum].GetNumberValue()),
				Ticks:    int64(sf[fieldTicks].GetNumberValue()),
			}
		}
		r.Runs = append(r.Runs, run)
	}

	return r, nil
}
