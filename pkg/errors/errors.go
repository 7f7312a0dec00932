package errors

import (
	"errors"
	"fmt"
	"time"

	"github.com/iamNilotpal/spanbench/internal/core/domain"
)

// ErrorCategory classifies errors raised while preparing, running or recording
// a benchmark. It is an alias so domain and callers share one set of values.
type ErrorCategory = domain.ErrorCategory

const (
	ErrorMismatch = domain.ErrorMismatch
	ErrorBuffer   = domain.ErrorBuffer
	ErrorReport   = domain.ErrorReport
	ErrorArchive  = domain.ErrorArchive
	ErrorConfig   = domain.ErrorConfig
)

// CategoryName returns the string representation of the error category.
// This is useful for logging.
func CategoryName(c ErrorCategory) string {
	switch c {
	case ErrorMismatch:
		return "mismatch"
	case ErrorBuffer:
		return "buffer"
	case ErrorReport:
		return "report"
	case ErrorArchive:
		return "archive"
	case ErrorConfig:
		return "config"
	default:
		return "unknown"
	}
}

// BenchError annotates an error with the operation and category it came from.
type BenchError struct {
	Err       error
	Operation string
	Timestamp time.Time
	Category  ErrorCategory
}

// NewBenchError wraps err. It returns nil when err is nil.
func NewBenchError(category ErrorCategory, operation string, err error) error {
	if err == nil {
		return nil
	}
	return &BenchError{Err: err, Operation: operation, Category: category, Timestamp: time.Now()}
}

func (e *BenchError) Error() string {
	return fmt.Sprintf("[%s] %s: %v", CategoryName(e.Category), e.Operation, e.Err)
}

func (e *BenchError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether the error means the measured results cannot be trusted.
// Fatal errors abort the process instead of exiting with a status code.
func (e *BenchError) IsFatal() bool {
	switch e.Category {
	case ErrorMismatch:
		// A divergent checksum is a correctness bug in an access pattern.
		return true
	default:
		return false
	}
}

// IsFatal reports whether err wraps a fatal BenchError.
func IsFatal(err error) bool {
	var be *BenchError
	return errors.As(err, &be) && be.IsFatal()
}

// CategoryOf returns the category of the first BenchError in err's chain, or 0.
func CategoryOf(err error) ErrorCategory {
	var be *BenchError
	if errors.As(err, &be) {
		return be.Category
	}
	return 0
}
