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

	// Invocation errors
	ErrArgumentCount   ErrorCode = "ARGUMENT_COUNT"
	ErrPathNotAbsolute ErrorCode = "PATH_NOT_ABSOLUTE"

	// Directive errors
	ErrMalformedDirective ErrorCode = "MALFORMED_DIRECTIVE"

	// Rule errors
	ErrSubstitutionConflict ErrorCode = "SUBSTITUTION_CONFLICT"
	ErrRuleInvalid          ErrorCode = "RULE_INVALID"

	// Registry errors
	ErrRegistryAccess ErrorCode = "REGISTRY_ACCESS"
	ErrRegistryParse  ErrorCode = "REGISTRY_PARSE"

	// Configuration errors
	ErrConfigLoad ErrorCode = "CONFIG_LOAD"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"
)

// LuavendError represents a structured error with code and details
type LuavendError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *LuavendError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *LuavendError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *LuavendError) Is(target error) bool {
	var targetErr *LuavendError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new LuavendError with the given code and message
func New(code ErrorCode, message string) *LuavendError {
	return &LuavendError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new LuavendError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *LuavendError {
	return &LuavendError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a LuavendError
func Wrap(err error, code ErrorCode, message string) *LuavendError {
	if err == nil {
		return nil
	}
	return &LuavendError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *LuavendError {
	if err == nil {
		return nil
	}
	return &LuavendError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *LuavendError) WithDetail(key string, value interface{}) *LuavendError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var lvErr *LuavendError
	if errors.As(err, &lvErr) {
		return lvErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// not a LuavendError
func GetErrorCode(err error) ErrorCode {
	var lvErr *LuavendError
	if errors.As(err, &lvErr) {
		return lvErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a
// LuavendError
func GetErrorDetails(err error) map[string]interface{} {
	var lvErr *LuavendError
	if errors.As(err, &lvErr) {
		return lvErr.Details
	}
	return nil
}
