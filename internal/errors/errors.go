// Package errors provides consistent error types for pomotime.
// It defines two categories: UserError (fixable by the user) and
// SystemError (storage or platform issues the user cannot fix directly).
package errors

import (
	"errors"
	"fmt"
)

// Standard sentinel errors for common conditions.
var (
	ErrInvalidSessionType = errors.New("invalid session type")
	ErrTimerRunning       = errors.New("timer is running")
	ErrInvalidDuration    = errors.New("invalid duration")
	ErrInvalidDate        = errors.New("invalid date")
	ErrUnknownSetting     = errors.New("unknown setting")
	ErrInvalidToggle      = errors.New("invalid on/off value")
	ErrDiskFull           = errors.New("disk full")
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrUnsupported        = errors.New("not supported on this system")
)

// UserError represents an error that the user can fix.
// Examples: invalid input, unknown setting key, wrong session type.
type UserError struct {
	Message    string // What happened
	Suggestion string // How to fix it
	Field      string // The field/input that caused the error (optional)
	Value      string // The invalid value (optional)
	Cause      error  // Sentinel for errors.Is (optional)
}

func (e *UserError) Error() string {
	msg := e.Message
	if e.Field != "" && e.Value != "" {
		msg = fmt.Sprintf("%s: '%s'", e.Message, e.Value)
	}
	return msg
}

func (e *UserError) Unwrap() error {
	return e.Cause
}

// NewUserError creates a new UserError.
func NewUserError(message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Suggestion: suggestion,
	}
}

// NewUserErrorWithField creates a new UserError with field context.
func NewUserErrorWithField(field, value, message, suggestion string) *UserError {
	return &UserError{
		Message:    message,
		Field:      field,
		Value:      value,
		Suggestion: suggestion,
	}
}

// WithCause attaches a sentinel so callers can match the error with errors.Is.
func (e *UserError) WithCause(cause error) *UserError {
	e.Cause = cause
	return e
}

// SystemError represents a system-level error that the user cannot directly fix.
// Examples: disk full, storage locked by another instance, corrupted data.
type SystemError struct {
	Message string // What happened
	Cause   error  // The underlying error
	Op      string // The operation that failed (optional)
}

func (e *SystemError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("%s during %s", e.Message, e.Op)
	}
	return e.Message
}

func (e *SystemError) Unwrap() error {
	return e.Cause
}

// NewSystemError creates a new SystemError.
func NewSystemError(message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
	}
}

// NewSystemErrorWithOp creates a new SystemError with operation context.
func NewSystemErrorWithOp(op, message string, cause error) *SystemError {
	return &SystemError{
		Message: message,
		Cause:   cause,
		Op:      op,
	}
}

// IsUserError checks if an error is a UserError.
func IsUserError(err error) bool {
	var ue *UserError
	return errors.As(err, &ue)
}

// IsSystemError checks if an error is a SystemError.
func IsSystemError(err error) bool {
	var se *SystemError
	return errors.As(err, &se)
}

// AsUserError extracts a UserError from an error chain.
func AsUserError(err error) (*UserError, bool) {
	var ue *UserError
	ok := errors.As(err, &ue)
	return ue, ok
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
