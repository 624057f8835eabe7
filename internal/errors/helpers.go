package errors

import (
	"context"
	"errors"
)

// As finds the first *Error in err's chain
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func find(err error) (*Error, bool) {
	var e *Error
	ok := errors.As(err, &e)
	return e, ok
}

// GetCode returns the code carried by err. Plain errors map to
// CodeInternal unless they are context cancellations or deadlines.
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e, ok := find(err); ok {
		return e.Code
	}
	if errors.Is(err, context.Canceled) {
		return CodeCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CodeDeadlineExceeded
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error in err's chain
func GetMeta(err error) map[string]any {
	if e, ok := find(err); ok {
		return e.Meta
	}
	return nil
}

// GetMessage returns the client-facing message, falling back to err.Error()
func GetMessage(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := find(err); ok {
		return e.Message
	}
	return err.Error()
}

// HasCode reports whether err carries code
func HasCode(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

// IsNotFound reports whether err carries CodeNotFound
func IsNotFound(err error) bool {
	return HasCode(err, CodeNotFound)
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument
func IsInvalidArgument(err error) bool {
	return HasCode(err, CodeInvalidArgument)
}

// IsFailedPrecondition reports whether err carries CodeFailedPrecondition
func IsFailedPrecondition(err error) bool {
	return HasCode(err, CodeFailedPrecondition)
}

// IsUnavailable reports whether err carries CodeUnavailable
func IsUnavailable(err error) bool {
	return HasCode(err, CodeUnavailable)
}

// IsInternal reports whether err carries CodeInternal. Plain errors without
// a code count as internal.
func IsInternal(err error) bool {
	return HasCode(err, CodeInternal)
}
