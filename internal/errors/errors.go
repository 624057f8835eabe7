package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Error is a coded error with a user-facing message
type Error struct {
	Code    Code           `json:"code"`
	Message string         `json:"message"`
	Cause   error          `json:"-"`
	Meta    map[string]any `json:"meta,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
}

// Unwrap returns the cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches any *Error with the same code
func (e *Error) Is(target error) bool {
	var t *Error
	return errors.As(target, &t) && t.Code == e.Code
}

// WithMeta attaches a key/value pair and returns e
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds a message to err. The code comes from err as GetCode reports it,
// so a wrapped *Error keeps its code and a context error keeps its meaning.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	return WrapWithCode(err, GetCode(err), message)
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode adds a message to err and reclassifies it. Metadata of a
// wrapped *Error is copied.
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: code, Message: message, Cause: err}
	var inner *Error
	if errors.As(err, &inner) && len(inner.Meta) > 0 {
		wrapped.Meta = maps.Clone(inner.Meta)
	}
	return wrapped
}

// WrapWithCodef is WrapWithCode with a formatted message
func WrapWithCodef(err error, code Code, format string, args ...any) *Error {
	return WrapWithCode(err, code, fmt.Sprintf(format, args...))
}

// NotFound reports a missing trainer, pokemon or reference creature
func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

// NotFoundf is NotFound with a formatted message
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument reports malformed input
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf is InvalidArgument with a formatted message
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// FailedPrecondition reports well-formed input the operation cannot act on
func FailedPrecondition(message string) *Error {
	return New(CodeFailedPrecondition, message)
}

// FailedPreconditionf is FailedPrecondition with a formatted message
func FailedPreconditionf(format string, args ...any) *Error {
	return Newf(CodeFailedPrecondition, format, args...)
}

// Unavailablef reports an unreachable dependency
func Unavailablef(format string, args ...any) *Error {
	return Newf(CodeUnavailable, format, args...)
}

// Internal reports a bug or an unexpected store failure
func Internal(message string) *Error {
	return New(CodeInternal, message)
}

// Internalf is Internal with a formatted message
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}
