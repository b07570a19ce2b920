package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Scan errors
	ErrScanRoot ErrorCode = "SCAN_ROOT"
	ErrScanDir  ErrorCode = "SCAN_DIR"

	// File processing errors
	ErrFileRead  ErrorCode = "FILE_READ"
	ErrFileWrite ErrorCode = "FILE_WRITE"

	// Rule errors
	ErrRuleUnknown ErrorCode = "RULE_UNKNOWN"
)

// FixError represents a structured error with code and details
type FixError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FixError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FixError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FixError) Is(target error) bool {
	var targetErr *FixError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FixError with the given code and message
func New(code ErrorCode, message string) *FixError {
	return &FixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FixError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FixError {
	return &FixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FixError
func Wrap(err error, code ErrorCode, message string) *FixError {
	if err == nil {
		return nil
	}
	return &FixError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FixError {
	if err == nil {
		return nil
	}
	return &FixError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FixError) WithDetail(key string, value interface{}) *FixError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var fixErr *FixError
	if errors.As(err, &fixErr) {
		return fixErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FixError
func GetErrorCode(err error) ErrorCode {
	var fixErr *FixError
	if errors.As(err, &fixErr) {
		return fixErr.Code
	}
	return ErrUnknown
}
