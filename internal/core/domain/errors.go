package domain

// ErrorCategory classifies errors raised while preparing, running or recording a benchmark.
type ErrorCategory int

const (
	// ErrorMismatch indicates the access patterns disagreed on a checksum.
	ErrorMismatch ErrorCategory = iota + 1

	// ErrorBuffer indicates the buffer could not be allocated, filled or released.
	ErrorBuffer

	// ErrorReport indicates a result could not be written to the output.
	ErrorReport

	// ErrorArchive indicates the run history could not be read or appended.
	ErrorArchive

	// ErrorConfig indicates invalid configuration.
	ErrorConfig
)
