package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBenchError(t *testing.T) {
	cause := errors.New("checksums differ")
	err := NewBenchError(ErrorMismatch, "measure", cause)

	assert.ErrorIs(t, err, cause)
	assert.True(t, IsFatal(err))
	assert.True(t, IsFatal(fmt.Errorf("outer: %w", err)))
	assert.Equal(t, ErrorMismatch, CategoryOf(fmt.Errorf("outer: %w", err)))
	assert.Equal(t, "[mismatch] measure: checksums differ", err.Error())
}

func TestBenchErrorNonFatal(t *testing.T) {
	for _, c := range []ErrorCategory{ErrorBuffer, ErrorReport, ErrorArchive, ErrorConfig} {
		err := NewBenchError(c, "op", errors.New("x"))
		assert.False(t, IsFatal(err), CategoryName(c))
		assert.Equal(t, c, CategoryOf(err))
	}

	assert.False(t, IsFatal(errors.New("plain")))
	assert.Zero(t, CategoryOf(errors.New("plain")))
	assert.Equal(t, "unknown", CategoryName(0))
}

func TestNewBenchErrorNil(t *testing.T) {
	assert.NoError(t, NewBenchError(ErrorArchive, "close", nil))
}

func TestValidationError(t *testing.T) {
	err := fmt.Errorf("loading: %w", Validationf("buffer.size", 0, "must be positive"))

	assert.True(t, IsValidationError(err))
	ve := AsValidationError(err)
	if assert.NotNil(t, ve) {
		assert.Equal(t, "buffer.size", ve.Field)
		assert.Equal(t, 0, ve.Value)
		assert.Equal(t, "invalid buffer.size: must be positive", ve.Error())
	}

	assert.False(t, IsValidationError(errors.New("plain")))
	assert.Nil(t, AsValidationError(errors.New("plain")))
	assert.Equal(t, "invalid seed", NewValidationError("seed", 1, nil).Error())
}
