// Package errors defines the diagnostic error type shared by the engine,
// the configuration loader and the CLI.
package errors

import (
	"fmt"

	"github.com/umt-kit/strfmt/syntax"
)

// ErrorKind describes the type of error.
type ErrorKind int

const (
	ErrBadPlaceholder ErrorKind = iota
	ErrUnresolvedPath
	ErrUnknownFormatter
	ErrBadFormatterSpec
	ErrUnterminated
	ErrFormatterPanic
	ErrBadPreset
	ErrBadConfig
)

func (k ErrorKind) String() string {
	switch k {
	case ErrBadPlaceholder:
		return "bad placeholder"
	case ErrUnresolvedPath:
		return "unresolved path"
	case ErrUnknownFormatter:
		return "unknown formatter"
	case ErrBadFormatterSpec:
		return "malformed formatter"
	case ErrUnterminated:
		return "unterminated placeholder"
	case ErrFormatterPanic:
		return "formatter panicked"
	case ErrBadPreset:
		return "bad preset"
	case ErrBadConfig:
		return "bad config"
	default:
		return "error"
	}
}

// Error represents a problem found while checking a template or loading
// configuration. Rendering itself never returns one; the engine degrades
// instead and Check reports what degraded.
type Error struct {
	Kind    ErrorKind
	Message string
	Span    *syntax.Span
	Name    string // template name
	Source  string // template source (for error display)
	cause   error
}

func (e *Error) Error() string {
	if e.Name != "" && e.Span != nil {
		return fmt.Sprintf("%s: %s (at %s line %d)", e.Kind, e.Message, e.Name, e.Span.StartLine)
	}
	if e.Span != nil {
		return fmt.Sprintf("%s: %s (at line %d)", e.Kind, e.Message, e.Span.StartLine)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is matches another *Error of the same kind, so callers can test with
// errors.Is(err, errors.NewError(ErrBadConfig, "")).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NewError creates a new error.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{Kind: kind, Message: msg}
}

// Errorf creates a new error with a formatted message.
func Errorf(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// WithSpan adds span information to an error.
func (e *Error) WithSpan(span syntax.Span) *Error {
	e.Span = &span
	return e
}

// WithName adds template name to an error.
func (e *Error) WithName(name string) *Error {
	e.Name = name
	return e
}

// WithSource adds source to an error.
func (e *Error) WithSource(source string) *Error {
	e.Source = source
	return e
}

// WithCause records the error that triggered this one.
func (e *Error) WithCause(err error) *Error {
	e.cause = err
	return e
}
