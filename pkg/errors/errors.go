// Package errors provides structured error types for the glassblock design model.
//
// This package defines error codes and types that enable:
//   - Distinguishing malformed input from rejected values and bad indices
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages for the CLI and terminal editor
//   - Error wrapping with context preservation
//
// # Error Codes
//
// The design model reports exactly three kinds of failure:
//   - PARSE_ERROR: serialized text could not be decoded
//   - INVALID_VALUE: a value failed a domain constraint
//   - INDEX_OUT_OF_RANGE: a slot or window index is outside the valid range
//
// The remaining codes describe failures of the surrounding tooling (files,
// configuration, clipboard).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidValue, "width must be between %d and %d", 1, 100)
//	if errors.Is(err, errors.ErrCodeInvalidValue) {
//	    // Revert the field and show the message
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeParse, origErr, "decode design")
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Design model errors
	ErrCodeParse        Code = "PARSE_ERROR"
	ErrCodeInvalidValue Code = "INVALID_VALUE"
	ErrCodeIndexRange   Code = "INDEX_OUT_OF_RANGE"

	// Tooling errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidPath   Code = "INVALID_PATH"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodeFileExists    Code = "FILE_EXISTS"
	ErrCodeUnsupported   Code = "UNSUPPORTED"
	ErrCodeInternal      Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
// Only the outermost *Error is consulted.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsParse reports whether err is a parse failure.
func IsParse(err error) bool { return Is(err, ErrCodeParse) }

// IsValidation reports whether err is a rejected value.
func IsValidation(err error) bool { return Is(err, ErrCodeInvalidValue) }

// IsIndex reports whether err is an out-of-range index.
func IsIndex(err error) bool { return Is(err, ErrCodeIndexRange) }

// WithContext prefixes the message of err with a formatted context string
// while keeping its code, e.g. "window 2: width must be between 1 and 100".
// Errors that are not *Error are wrapped with ErrCodeInternal.
func WithContext(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	prefix := fmt.Sprintf(format, args...)
	var e *Error
	if errors.As(err, &e) {
		return &Error{Code: e.Code, Message: prefix + ": " + e.Message, Cause: e.Cause}
	}
	return Wrap(ErrCodeInternal, err, "%s", prefix)
}
