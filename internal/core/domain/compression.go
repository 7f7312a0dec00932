package domain

// CompressionOptions configures the zstd frames written to the run archive.
type CompressionOptions struct {
	// Level is the zstd encoder level, see the compression adapter for the range.
	// If not specified, the default level is used.
	Level uint8

	// EncoderConcurrency caps concurrent encoder goroutines.
	// 0 means one per CPU core.
	EncoderConcurrency uint8

	// DecoderConcurrency caps concurrent decoder goroutines.
	// 0 means one per CPU core.
	DecoderConcurrency uint8
}

// ArchiveOptions configures the run history file.
type ArchiveOptions struct {
	// Path of the archive file. An empty path disables archiving.
	Path string

	// Compression settings for each appended frame.
	Compression *CompressionOptions
}
