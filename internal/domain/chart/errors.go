package chart

import (
	"errors"
	"fmt"
)

// ErrorCode identifies the well-known failure categories of the chart domain.
type ErrorCode string

const (
	ErrCodePartialEntry ErrorCode = "PARTIAL_ENTRY"
	ErrCodeNoData       ErrorCode = "NO_DATA"
	ErrCodeRead         ErrorCode = "READ_ERROR"
	ErrCodeInvariant    ErrorCode = "INVARIANT_VIOLATION"
	ErrCodeInvalidOpt   ErrorCode = "INVALID_OPTION"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeNotReady     ErrorCode = "NOT_READY"
	ErrCodeRender       ErrorCode = "RENDER_ERROR"
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
)

// DomainError is a typed error enriched with contextual data. None of the
// codes are fatal; callers report them and keep the prior state.
type DomainError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]interface{}
}

// Error implements the error interface.
func (e *DomainError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the wrapped cause for errors.Is / errors.As usage.
func (e *DomainError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// Is matches another DomainError carrying the same code. A target without a
// message matches any message, so sentinels like ErrNoData work with errors.Is.
func (e *DomainError) Is(target error) bool {
	var domainErr *DomainError
	if !errors.As(target, &domainErr) || e == nil {
		return false
	}
	if e.Code != domainErr.Code {
		return false
	}
	return domainErr.Message == "" || e.Message == domainErr.Message
}

// WithContext clones the error with additional contextual metadata.
func (e *DomainError) WithContext(ctx map[string]interface{}) *DomainError {
	if e == nil {
		return nil
	}
	merged := make(map[string]interface{}, len(e.Context)+len(ctx))
	for k, v := range e.Context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	return &DomainError{
		Code:    e.Code,
		Message: e.Message,
		Cause:   e.Cause,
		Context: merged,
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrPartialEntry = &DomainError{Code: ErrCodePartialEntry}
	ErrNoData       = &DomainError{Code: ErrCodeNoData}
	ErrRead         = &DomainError{Code: ErrCodeRead}
	ErrInvariant    = &DomainError{Code: ErrCodeInvariant}
	ErrInvalidOpt   = &DomainError{Code: ErrCodeInvalidOpt}
	ErrNotFound     = &DomainError{Code: ErrCodeNotFound}
	ErrNotReady     = &DomainError{Code: ErrCodeNotReady}
	ErrRender       = &DomainError{Code: ErrCodeRender}
)

// IsCode reports whether err carries a DomainError with the given code.
func IsCode(err error, code ErrorCode) bool {
	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		return false
	}
	return domainErr.Code == code
}

// NewError constructs a DomainError with the supplied code and message.
func NewError(code ErrorCode, message string, cause error, context map[string]interface{}) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

func newInvariantError(message string, context map[string]interface{}) *DomainError {
	return NewError(ErrCodeInvariant, message, nil, context)
}

func newNotFoundError(index, length int) *DomainError {
	return NewError(ErrCodeNotFound, "row index out of range", nil, map[string]interface{}{
		"index":  index,
		"length": length,
	})
}

func newInvalidOptionError(field, message string, cause error) *DomainError {
	return NewError(ErrCodeInvalidOpt, message, cause, map[string]interface{}{
		"field": field,
	})
}
