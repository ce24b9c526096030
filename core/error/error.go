// File: error.go
// Title: Core Error Implementation
// Description: Implements the main Error type with error codes, wrapping and
//              structured details. Provides a rich error handling system that
//              maintains compatibility with Go's standard error interface
//              while keeping user-facing messages separate from internal
//              diagnostics.
// Version: v0.1.0
// Created: 2025-08-31

package error

import (
	"errors"
	"fmt"
)

// Error represents a structured error with a code and optional metadata
type Error struct {
	message   string
	cause     error
	code      Code
	operation string
	details   map[string]interface{}
}

// New creates a new Error with the given message
func New(message string) *Error {
	return &Error{
		message: message,
		code:    CodeUnknown,
	}
}

// Newf creates a new Error with a formatted message
func Newf(format string, args ...interface{}) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with additional context. Returns nil if err
// is nil. If err is already an *Error, its code is preserved.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	code := CodeUnknown
	var appErr *Error
	if errors.As(err, &appErr) {
		code = appErr.code
	}

	return &Error{
		message: message,
		cause:   err,
		code:    code,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, format string, args ...interface{}) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithCode sets the error code and returns the error for chaining
func (e *Error) WithCode(code Code) *Error {
	e.code = code
	return e
}

// WithOperation records the operation during which the error occurred
func (e *Error) WithOperation(operation string) *Error {
	e.operation = operation
	return e
}

// WithDetail attaches a key-value detail to the error
func (e *Error) WithDetail(key string, value interface{}) *Error {
	if e.details == nil {
		e.details = make(map[string]interface{})
	}
	e.details[key] = value
	return e
}

// Error implements the standard error interface
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s", e.message, e.cause.Error())
	}
	return e.message
}

// Message returns the error's own message without the cause chain. Parse
// errors use this as the user-facing text.
func (e *Error) Message() string {
	return e.message
}

// Unwrap returns the underlying cause for error unwrapping
func (e *Error) Unwrap() error {
	return e.cause
}

// Code returns the error code
func (e *Error) Code() Code {
	return e.code
}

// Operation returns the recorded operation, if any
func (e *Error) Operation() string {
	return e.operation
}

// Detail returns the detail value for the given key
func (e *Error) Detail(key string) (interface{}, bool) {
	v, ok := e.details[key]
	return v, ok
}

// CodeOf extracts the error code from any error. Returns CodeUnknown for
// nil errors and errors that are not *Error values.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.code
	}
	return CodeUnknown
}

// HasCode reports whether err carries the given code anywhere in its chain
func HasCode(err error, code Code) bool {
	return CodeOf(err) == code
}

// UserMessage returns the message that should be shown to the user for err.
// For *Error values this is the outermost message; other errors fall back
// to Error().
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	return err.Error()
}
