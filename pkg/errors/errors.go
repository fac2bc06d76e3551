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

	// Registry errors
	ErrUnknownEventType      ErrorCode = "UNKNOWN_EVENT_TYPE"
	ErrDuplicateRegistration ErrorCode = "DUPLICATE_REGISTRATION"
	ErrAlreadyExists         ErrorCode = "ALREADY_EXISTS"
	ErrNotFound              ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Manager errors
	ErrTaskAbort ErrorCode = "TASK_ABORT"
)

// DohookError represents a structured error with code and details
type DohookError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DohookError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DohookError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DohookError) Is(target error) bool {
	var targetErr *DohookError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DohookError with the given code and message
func New(code ErrorCode, message string) *DohookError {
	return &DohookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DohookError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DohookError {
	return &DohookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DohookError
func Wrap(err error, code ErrorCode, message string) *DohookError {
	if err == nil {
		return nil
	}
	return &DohookError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DohookError {
	if err == nil {
		return nil
	}
	return &DohookError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DohookError) WithDetail(key string, value interface{}) *DohookError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dohookErr *DohookError
	if errors.As(err, &dohookErr) {
		return dohookErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DohookError
func GetErrorCode(err error) ErrorCode {
	var dohookErr *DohookError
	if errors.As(err, &dohookErr) {
		return dohookErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DohookError
func GetErrorDetails(err error) map[string]interface{} {
	var dohookErr *DohookError
	if errors.As(err, &dohookErr) {
		return dohookErr.Details
	}
	return nil
}
