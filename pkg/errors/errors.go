// Package errors provides structured error types for statcard.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the renderer, the CLI, and the HTTP server
//   - Machine-readable error codes for programmatic handling
//   - A short title plus a descriptive message for error cards
//
// # Error Codes
//
// Error codes follow a hierarchical naming convention:
//   - INVALID_*: Option validation failures
//   - NOTHING_TO_RENDER: The options leave the card empty
//   - NOT_FOUND: Stats for a user do not exist
//   - INTERNAL_*: Unexpected internal errors
//
// # Usage
//
//	err := errors.New(errors.ErrCodeInvalidLocale, "locale %q is not supported", code)
//	if errors.Is(err, errors.ErrCodeInvalidLocale) {
//	    // render an error card
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInternal, origErr, "read stats for %s", user)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Option validation errors
	ErrCodeInvalidInput        Code = "INVALID_INPUT"
	ErrCodeInvalidLocale       Code = "INVALID_LOCALE"
	ErrCodeInvalidColor        Code = "INVALID_COLOR"
	ErrCodeInvalidNumberFormat Code = "INVALID_NUMBER_FORMAT"
	ErrCodeInvalidRankIcon     Code = "INVALID_RANK_ICON"
	ErrCodeInvalidUsername     Code = "INVALID_USERNAME"

	// Rendering errors
	ErrCodeNothingToRender Code = "NOTHING_TO_RENDER"

	// Resource not found errors
	ErrCodeNotFound Code = "NOT_FOUND"

	// Internal errors
	ErrCodeInternal Code = "INTERNAL_ERROR"
)

// Error is a structured error with a code and optional cause.
//
// Title is a short headline suitable for the first line of an error card.
// It is optional; errors without a title render with a generic headline.
type Error struct {
	Code    Code   // Machine-readable error code
	Title   string // Short user-facing headline (optional)
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

// Titled creates a new Error that carries a headline in addition to its message.
func Titled(code Code, title, message string) *Error {
	return &Error{
		Code:    code,
		Title:   title,
		Message: message,
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

// UserTitle returns the headline of the first *Error in the chain that has one.
// It returns fallback when no titled error is found.
func UserTitle(err error, fallback string) string {
	var e *Error
	for cur := err; errors.As(cur, &e); cur = e.Cause {
		if e.Title != "" {
			return e.Title
		}
	}
	return fallback
}
