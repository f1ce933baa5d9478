package ocrmac

import (
	"errors"
	"fmt"
)

// ErrorType categorizes processing failures. Every failure is terminal for
// the current call; nothing is retried at this layer.
type ErrorType string

const (
	ErrorTypeValidation         ErrorType = "validation"
	ErrorTypePlatform           ErrorType = "unsupported_platform"
	ErrorTypeOSVersion          ErrorType = "unsupported_os_version"
	ErrorTypeFileNotFound       ErrorType = "file_not_found"
	ErrorTypeUnsupportedFormat  ErrorType = "unsupported_format"
	ErrorTypeBackendUnavailable ErrorType = "backend_unavailable"
	ErrorTypeRasterization      ErrorType = "rasterization"
	ErrorTypeProcessing         ErrorType = "processing"
)

// Error is a structured engine error carrying its category and, where a
// collaborator failed, the wrapped cause.
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(t ErrorType, message string, cause error) *Error {
	return &Error{Type: t, Message: message, Cause: cause}
}

// IsType reports whether err, or any error it wraps, is an engine Error of
// the given type.
func IsType(err error, errorType ErrorType) bool {
	for err != nil {
		var engineErr *Error
		if !errors.As(err, &engineErr) {
			return false
		}
		if engineErr.Type == errorType {
			return true
		}
		err = engineErr.Cause
	}
	return false
}
