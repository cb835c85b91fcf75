package chart

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainError_Error(t *testing.T) {
	err := &DomainError{Code: ErrCodeNoData, Message: "empty"}
	assert.Equal(t, "NO_DATA: empty", err.Error())

	wrapped := &DomainError{Code: ErrCodeRead, Message: "read failed", Cause: err}
	assert.Equal(t, "READ_ERROR: read failed: NO_DATA: empty", wrapped.Error())
}

func TestDomainError_IsMatchesSentinelByCode(t *testing.T) {
	err := NewError(ErrCodePartialEntry, "incomplete data entries", nil, nil)

	assert.True(t, errors.Is(err, ErrPartialEntry))
	assert.False(t, errors.Is(err, ErrNoData))
	assert.False(t, errors.Is(err, fmt.Errorf("other")))

	mismatch := &DomainError{Code: ErrCodePartialEntry, Message: "something else"}
	assert.False(t, errors.Is(err, mismatch))
}

func TestDomainError_IsThroughWrapping(t *testing.T) {
	inner := NewError(ErrCodeRead, "cannot open", nil, nil)
	outer := fmt.Errorf("import csv: %w", inner)

	assert.True(t, errors.Is(outer, ErrRead))
	assert.True(t, IsCode(outer, ErrCodeRead))
	assert.False(t, IsCode(outer, ErrCodeNoData))
	assert.False(t, IsCode(nil, ErrCodeRead))
}

func TestDomainError_WithContext(t *testing.T) {
	err := &DomainError{Code: ErrCodeInvariant, Message: "last row", Context: map[string]interface{}{"index": 0}}
	updated := err.WithContext(map[string]interface{}{"rows": 1})

	require.NotSame(t, err, updated)
	assert.Equal(t, 0, updated.Context["index"])
	assert.Equal(t, 1, updated.Context["rows"])
	assert.NotContains(t, err.Context, "rows")
}

func TestDomainError_NilReceiver(t *testing.T) {
	var err *DomainError
	assert.Equal(t, "<nil>", err.Error())
	assert.Nil(t, err.Unwrap())
	assert.Nil(t, err.WithContext(map[string]interface{}{"key": "value"}))
}
