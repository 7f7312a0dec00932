package config

import (
	"fmt"
	"os"

	"github.com/iamNilotpal/spanbench/internal/adapters/buffer"
	"github.com/iamNilotpal/spanbench/internal/adapters/compression"
	"github.com/iamNilotpal/spanbench/internal/adapters/fingerprint"
	"github.com/iamNilotpal/spanbench/internal/adapters/report"
	"github.com/iamNilotpal/spanbench/internal/core/domain"
	"github.com/iamNilotpal/spanbench/internal/core/services/bench"
	validation "github.com/iamNilotpal/spanbench/pkg/errors"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Buffer  BufferConfig  `yaml:"buffer"`
	Bench   BenchConfig   `yaml:"bench"`
	Attach  AttachConfig  `yaml:"attach"`
	Report  ReportConfig  `yaml:"report"`
	Archive ArchiveConfig `yaml:"archive"`
	Log     LogConfig     `yaml:"log"`
}

// Holds buffer generation settings
type BufferConfig struct {
	Size   int    `yaml:"size"`   // Buffer length in bytes
	Seed   uint64 `yaml:"seed"`   // Seed of the pseudo-random source
	Source string `yaml:"source"` // chacha or pcg
	Memory string `yaml:"memory"` // heap or mmap
}

// Holds measurement settings
type BenchConfig struct {
	Iterations   int `yaml:"iterations"`    // Passes over the buffer per call
	WarmupRounds int `yaml:"warmup_rounds"` // Untimed verified rounds
	Runs         int `yaml:"runs"`          // Timed runs, one output line each
	CPU          int `yaml:"cpu"`           // CPU to pin to, -1 for none
}

// Holds the profiler attach point settings
type AttachConfig struct {
	WaitForKey bool `yaml:"wait_for_key"` // Print the pid and wait for a key press before running
}

type ReportConfig struct {
	Format      string `yaml:"format"`      // text or json
	Fingerprint string `yaml:"fingerprint"` // Buffer fingerprint algorithm
}

// Holds run history settings
type ArchiveConfig struct {
	Path             string `yaml:"path"`              // Archive file, empty disables archiving
	CompressionLevel uint8  `yaml:"compression_level"` // zstd encoder level
}

type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn or error
}

// Returns a Config for one verified run over 1024 bytes seeded with 42, waiting
// for a key press first and writing text lines.
func DefaultConfig() *Config {
	return &Config{
		Buffer: BufferConfig{
			Size:   buffer.DefaultSize,
			Seed:   buffer.DefaultSeed,
			Source: string(domain.SourceChaCha),
			Memory: string(domain.MemoryHeap),
		},
		Bench: BenchConfig{
			Iterations:   bench.DefaultIterations,
			WarmupRounds: bench.DefaultWarmupRounds,
			Runs:         bench.DefaultRuns,
			CPU:          bench.NoCPU,
		},
		Attach: AttachConfig{WaitForKey: true},
		Report: ReportConfig{
			Format:      string(report.FormatText),
			Fingerprint: string(fingerprint.DefaultAlgorithm),
		},
		Archive: ArchiveConfig{CompressionLevel: compression.DefaultLevel},
		Log:     LogConfig{Level: "info"},
	}
}

// Loads configuration from a YAML file. Keys missing from the file keep
// their default values.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, validation.NewBenchError(
			validation.ErrorConfig, "load", fmt.Errorf("error reading config file: %w", err),
		)
	}

	config, err := Parse(data)
	if err != nil {
		return nil, validation.NewBenchError(validation.ErrorConfig, "load", err)
	}
	return config, nil
}

// Parses YAML configuration on top of DefaultConfig and validates the result.
func Parse(data []byte) (*Config, error) {
	config := DefaultConfig()

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func Validate(config *Config) error {
	if err := buffer.Validate(config.BufferOptions()); err != nil {
		return err
	}

	if err := bench.Validate(config.BenchOptions()); err != nil {
		return err
	}

	if err := report.Validate(report.Format(config.Report.Format)); err != nil {
		return validation.NewValidationError("report.format", config.Report.Format, err)
	}

	if err := fingerprint.Validate(domain.FingerprintAlgorithm(config.Report.Fingerprint)); err != nil {
		return validation.NewValidationError("report.fingerprint", config.Report.Fingerprint, err)
	}

	if err := compression.Validate(config.ArchiveOptions().Compression); err != nil {
		return validation.NewValidationError("archive.compression_level", config.Archive.CompressionLevel, err)
	}

	if _, err := zapcore.ParseLevel(config.Log.Level); err != nil {
		return validation.NewValidationError("log.level", config.Log.Level, err)
	}

	return nil
}

func (c *Config) BufferOptions() *domain.BufferOptions {
	return &domain.BufferOptions{
		Size:   c.Buffer.Size,
		Seed:   c.Buffer.Seed,
		Source: domain.ByteSource(c.Buffer.Source),
		Memory: domain.MemoryKind(c.Buffer.Memory),
	}
}

func (c *Config) BenchOptions() *bench.Options {
	return &bench.Options{
		Iterations:   c.Bench.Iterations,
		WarmupRounds: c.Bench.WarmupRounds,
		Runs:         c.Bench.Runs,
		CPU:          c.Bench.CPU,
	}
}

func (c *Config) ArchiveOptions() *domain.ArchiveOptions {
	compressionOptions := compression.DefaultOptions()
	compressionOptions.Level = c.Archive.CompressionLevel

	return &domain.ArchiveOptions{
		Path:        c.Archive.Path,
		Compression: compressionOptions,
	}
}
