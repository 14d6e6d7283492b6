package strfmt

import (
	"github.com/umt-kit/strfmt/internal/errors"
)

// Error is a diagnostic produced by Check, AddPreset or config loading.
// Format it with "%+v" to get a source excerpt with the placeholder
// underlined.
type Error = errors.Error

// ErrorKind describes the type of error.
type ErrorKind = errors.ErrorKind

const (
	ErrBadPlaceholder   = errors.ErrBadPlaceholder
	ErrUnresolvedPath   = errors.ErrUnresolvedPath
	ErrUnknownFormatter = errors.ErrUnknownFormatter
	ErrBadFormatterSpec = errors.ErrBadFormatterSpec
	ErrUnterminated     = errors.ErrUnterminated
	ErrFormatterPanic   = errors.ErrFormatterPanic
	ErrBadPreset        = errors.ErrBadPreset
	ErrBadConfig        = errors.ErrBadConfig
)

// NewError creates a new error.
func NewError(kind ErrorKind, msg string) *Error {
	return errors.NewError(kind, msg)
}

// Errorf creates a new error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return errors.Errorf(kind, format, args...)
}
