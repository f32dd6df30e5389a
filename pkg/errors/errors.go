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
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// Catalog errors
	ErrCatalogParse ErrorCode = "CATALOG_PARSE"

	// Spec load errors. Each one signals a malformed rule spec; the host
	// must abort before resolving any font against the rule set.
	ErrGrammar             ErrorCode = "GRAMMAR"
	ErrUnknownTag          ErrorCode = "UNKNOWN_TAG"
	ErrAmbiguousTag        ErrorCode = "AMBIGUOUS_TAG"
	ErrUnsupportedRelation ErrorCode = "UNSUPPORTED_RELATION"
	ErrArgTypeMismatch     ErrorCode = "ARG_TYPE_MISMATCH"
	ErrIntSet              ErrorCode = "INT_SET"
	ErrMultiTagFilter      ErrorCode = "MULTI_TAG_FILTER"

	// Font attribute errors
	ErrFontName ErrorCode = "FONT_NAME"
	ErrFontTTX  ErrorCode = "FONT_TTX"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
)

// FontlintError represents a structured error with code and details
type FontlintError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *FontlintError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *FontlintError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *FontlintError) Is(target error) bool {
	var targetErr *FontlintError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new FontlintError with the given code and message
func New(code ErrorCode, message string) *FontlintError {
	return &FontlintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new FontlintError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *FontlintError {
	return &FontlintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a FontlintError
func Wrap(err error, code ErrorCode, message string) *FontlintError {
	if err == nil {
		return nil
	}
	return &FontlintError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *FontlintError {
	if err == nil {
		return nil
	}
	return &FontlintError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *FontlintError) WithDetail(key string, value interface{}) *FontlintError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var flErr *FontlintError
	if errors.As(err, &flErr) {
		return flErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a FontlintError
func GetErrorCode(err error) ErrorCode {
	var flErr *FontlintError
	if errors.As(err, &flErr) {
		return flErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a FontlintError
func GetErrorDetails(err error) map[string]interface{} {
	var flErr *FontlintError
	if errors.As(err, &flErr) {
		return flErr.Details
	}
	return nil
}
