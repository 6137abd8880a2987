// Package apperror provides the typed errors shared by the assessment and
// CV-analysis services, so controllers can map failures to HTTP statuses
// without string matching.
package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeNotFound             Code = "NOT_FOUND"
	CodeForbidden            Code = "FORBIDDEN"
	CodeUnauthorized         Code = "UNAUTHORIZED"
	CodeAlreadyCompleted     Code = "ALREADY_COMPLETED"
	CodeNotCompleted         Code = "NOT_COMPLETED"
	CodeIncompleteAnswers    Code = "INCOMPLETE_ANSWERS"
	CodeInvalidPayload       Code = "INVALID_PAYLOAD"
	CodeOnboardingIncomplete Code = "ONBOARDING_INCOMPLETE"
	CodeMissingFile          Code = "MISSING_FILE"
	CodeValidationFailed     Code = "VALIDATION_FAILED"
	CodeInternal             Code = "INTERNAL"
)

// Error is the failure type returned by every service operation boundary.
// Fields carries field-level detail for INVALID_PAYLOAD / VALIDATION_FAILED.
type Error struct {
	Code    Code
	Message string
	Fields  []string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *Error) Unwrap() error { return e.cause }

func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

func Newf(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// WithFields attaches the names of the violated fields.
func (e *Error) WithFields(fields ...string) *Error {
	e.Fields = fields
	return e
}

// Wrap converts an unexpected failure into an INTERNAL error while keeping
// the cause for logging.
func Wrap(err error, message string) *Error {
	return &Error{Code: CodeInternal, Message: message, cause: err}
}

// CodeOf extracts the Code from err, or INTERNAL for foreign errors.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

// Is reports whether err carries the given code.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}
