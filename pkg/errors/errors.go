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
	ErrUnknown        ErrorCode = "UNKNOWN"
	ErrInternal       ErrorCode = "INTERNAL"
	ErrNotImplemented ErrorCode = "NOT_IMPLEMENTED"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Configuration-semantic errors. These carry the offending node name
	// and the document text in Details (keys "node" and "document").
	ErrMissingArgument    ErrorCode = "MISSING_ARGUMENT"
	ErrInvalidString      ErrorCode = "INVALID_STRING"
	ErrMissingSource      ErrorCode = "MISSING_SOURCE"
	ErrInvalidFloat       ErrorCode = "INVALID_FLOAT"
	ErrInvalidContentKind ErrorCode = "INVALID_CONTENT_KIND"

	// Dependency-resolution errors
	ErrUnknownDependency ErrorCode = "UNKNOWN_DEPENDENCY"
	ErrCycleDetected     ErrorCode = "CYCLE_DETECTED"
)

// SkelError represents a structured error with code and details
type SkelError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *SkelError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *SkelError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *SkelError) Is(target error) bool {
	var targetErr *SkelError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new SkelError with the given code and message
func New(code ErrorCode, message string) *SkelError {
	return &SkelError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new SkelError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *SkelError {
	return &SkelError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a SkelError
func Wrap(err error, code ErrorCode, message string) *SkelError {
	if err == nil {
		return nil
	}
	return &SkelError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *SkelError {
	if err == nil {
		return nil
	}
	return &SkelError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *SkelError) WithDetail(key string, value interface{}) *SkelError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// NewConfig creates a configuration-semantic error pointing at a node.
// The full document text travels in Details so callers can display the
// offending configuration alongside the message.
func NewConfig(code ErrorCode, node, document, message string) *SkelError {
	err := Newf(code, "%s (node %q)", message, node)
	err.Details["node"] = node
	err.Details["document"] = document
	return err
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var skelErr *SkelError
	if errors.As(err, &skelErr) {
		return skelErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a SkelError
func GetErrorCode(err error) ErrorCode {
	var skelErr *SkelError
	if errors.As(err, &skelErr) {
		return skelErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a SkelError
func GetErrorDetails(err error) map[string]interface{} {
	var skelErr *SkelError
	if errors.As(err, &skelErr) {
		return skelErr.Details
	}
	return nil
}
