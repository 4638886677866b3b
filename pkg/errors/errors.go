// Package errors provides structured error types for the ledsmith engine.
//
// This package defines error codes and types that enable:
//   - Consistent error handling across the library and the CLI
//   - Machine-readable error codes for programmatic handling
//   - User-friendly error messages
//   - Error wrapping with context preservation
//
// # Error Codes
//
// Shape codes form the closed verdict taxonomy of the outline validator;
// callers switch on them to decide how to surface a rejection. The remaining
// codes cover ambient failures (bad CLI input, missing presets, placement
// overflow).
//
// # Usage
//
//	err := errors.New(errors.ErrCodeShapeSelfIntersection, "contour %d crosses itself", i)
//	if errors.Is(err, errors.ErrCodeShapeSelfIntersection) {
//	    // Reject the edit, keep the previous outline.
//	}
//
//	// Wrap existing errors
//	err := errors.Wrap(errors.ErrCodeInvalidConfig, origErr, "preset %q", name)
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Outline validator verdicts. This set is closed: the validator never
	// reports anything outside these four codes.
	ErrCodeShapeDegenerate       Code = "SHAPE_INVALID_DEGENERATE"
	ErrCodeShapeSelfIntersection Code = "SHAPE_INVALID_SELF_INTERSECTION"
	ErrCodeShapeBBoxEscape       Code = "SHAPE_INVALID_BBOX_ESCAPE"
	ErrCodeShapeCurvatureSpike   Code = "SHAPE_INVALID_CURVATURE_SPIKE"

	// Input validation errors
	ErrCodeInvalidInput  Code = "INVALID_INPUT"
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"
	ErrCodeInvalidFormat Code = "INVALID_FORMAT"
	ErrCodeInvalidPoint  Code = "INVALID_POINT"

	// Resource errors
	ErrCodeNotFound      Code = "NOT_FOUND"
	ErrCodeFileNotFound  Code = "FILE_NOT_FOUND"
	ErrCodePresetUnknown Code = "PRESET_UNKNOWN"

	// Placement errors
	ErrCodePlacementOverflow Code = "PLACEMENT_OVERFLOW"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
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

// IsShapeCode reports whether code belongs to the outline validator's
// closed verdict taxonomy.
func IsShapeCode(code Code) bool {
	switch code {
	case ErrCodeShapeDegenerate, ErrCodeShapeSelfIntersection,
		ErrCodeShapeBBoxEscape, ErrCodeShapeCurvatureSpike:
		return true
	}
	return false
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
