// Package errors provides the structured error type shared by every subsea
// package. Errors carry a category, a stable code, and optional location
// context so the CLI can report them and pick an exit status.
package errors

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// ErrorType represents different categories of errors.
type ErrorType string

const (
	ErrorTypeValidation ErrorType = "validation"
	ErrorTypeIO         ErrorType = "io"
	ErrorTypeConfig     ErrorType = "config"
	ErrorTypeInternal   ErrorType = "internal"
)

// Common error codes.
const (
	ErrCodeEmptyInput       = "EMPTY_INPUT"
	ErrCodeMalformedRecord  = "MALFORMED_RECORD"
	ErrCodeExhaustedColumns = "EXHAUSTED_COLUMNS"
	ErrCodeInputRead        = "INPUT_READ"
	ErrCodeUnknownDay       = "UNKNOWN_DAY"
	ErrCodeConfigInvalid    = "CONFIG_INVALID"
	ErrCodeMalformedCommand = "MALFORMED_COMMAND"
	ErrCodeMalformedBoard   = "MALFORMED_BOARD"
	ErrCodeInternalError    = "INTERNAL"
)

// SubseaError is a structured error type with context.
type SubseaError struct {
	Type      ErrorType
	Code      string
	Message   string
	Cause     error
	Context   map[string]interface{}
	Component string
	FilePath  string
	Line      int
}

// Error implements the error interface.
func (e *SubseaError) Error() string {
	var parts []string

	if e.Code != "" {
		parts = append(parts, fmt.Sprintf("[%s]", e.Code))
	}

	if e.Component != "" {
		parts = append(parts, "component:"+e.Component)
	}

	if e.FilePath != "" {
		location := e.FilePath
		if e.Line > 0 {
			location += fmt.Sprintf(":%d", e.Line)
		}
		parts = append(parts, location)
	} else if e.Line > 0 {
		parts = append(parts, fmt.Sprintf("line %d", e.Line))
	}

	parts = append(parts, e.Message)

	result := strings.Join(parts, " ")

	if e.Cause != nil {
		result += fmt.Sprintf(": %v", e.Cause)
	}

	return result
}

// Unwrap returns the underlying cause error.
func (e *SubseaError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a SubseaError with the same type and code.
func (e *SubseaError) Is(target error) bool {
	var t *SubseaError
	if errors.As(target, &t) {
		return e.Type == t.Type && e.Code == t.Code
	}

	return false
}

// WithContext adds context information to the error.
func (e *SubseaError) WithContext(key string, value interface{}) *SubseaError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value

	return e
}

// WithLocation adds file location information.
func (e *SubseaError) WithLocation(filePath string, line int) *SubseaError {
	e.FilePath = filePath
	e.Line = line

	return e
}

// WithLine records the 1-based input line the error refers to.
func (e *SubseaError) WithLine(line int) *SubseaError {
	e.Line = line

	return e
}

// WithComponent adds component context.
func (e *SubseaError) WithComponent(component string) *SubseaError {
	e.Component = component

	return e
}

// NewValidationError creates a validation error.
func NewValidationError(code, message string) *SubseaError {
	return &SubseaError{
		Type:    ErrorTypeValidation,
		Code:    code,
		Message: message,
	}
}

// NewIOError creates an I/O error.
func NewIOError(code, message string, cause error) *SubseaError {
	return &SubseaError{
		Type:    ErrorTypeIO,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// NewConfigError creates a configuration error.
func NewConfigError(code, message string) *SubseaError {
	return &SubseaError{
		Type:    ErrorTypeConfig,
		Code:    code,
		Message: message,
	}
}

// NewInternalError creates an internal error.
func NewInternalError(code, message string, cause error) *SubseaError {
	return &SubseaError{
		Type:    ErrorTypeInternal,
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// IsValidation checks if an error is an input validation failure.
func IsValidation(err error) bool {
	var se *SubseaError
	if errors.As(err, &se) {
		return se.Type == ErrorTypeValidation
	}

	return false
}

// HasCode checks if err carries the given code anywhere in its chain.
func HasCode(err error, code string) bool {
	var se *SubseaError
	if errors.As(err, &se) {
		return se.Code == code
	}

	return false
}

// ExitCode maps an error to the process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var se *SubseaError
	if !errors.As(err, &se) {
		return 1
	}

	switch se.Type {
	case ErrorTypeValidation:
		return 2
	case ErrorTypeIO:
		return 3
	case ErrorTypeConfig:
		return 4
	default:
		return 1
	}
}

// Logger interface for error logging.
type Logger interface {
	Error(ctx context.Context, err error, msg string, fields ...interface{})
	Warn(ctx context.Context, err error, msg string, fields ...interface{})
}

// ErrorHandler provides centralized error reporting for the CLI.
type ErrorHandler struct {
	logger Logger
}

// NewErrorHandler creates a new error handler.
func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// Handle logs an error with fields derived from its structure.
func (h *ErrorHandler) Handle(ctx context.Context, err error) {
	if err == nil || h.logger == nil {
		return
	}

	var se *SubseaError
	if !errors.As(err, &se) {
		h.logger.Error(ctx, err, "Unhandled error occurred")
		return
	}

	fields := []interface{}{"type", se.Type, "code", se.Code}
	if se.Component != "" {
		fields = append(fields, "component", se.Component)
	}
	if se.FilePath != "" {
		fields = append(fields, "file", se.FilePath)
	}
	if se.Line > 0 {
		fields = append(fields, "line", se.Line)
	}

	switch se.Type {
	case ErrorTypeValidation:
		h.logger.Warn(ctx, err, "Validation error occurred", fields...)
	default:
		h.logger.Error(ctx, err, "Error occurred", fields...)
	}
}
