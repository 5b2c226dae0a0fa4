package common

import (
	"errors"
	"fmt"
)

// ErrKind classifies a failure for status mapping at the HTTP boundary.
type ErrKind int

const (
	KindValidation ErrKind = iota
	KindInternal
)

// Error is the tagged error type shared by all services. Validation errors
// carry a caller-facing message; internal errors wrap the underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		if e.Msg != "" {
			return e.Msg + ": " + e.Err.Error()
		}
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ValidationError builds a 400-class error with a formatted message.
func ValidationError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// InternalError wraps an unexpected failure for 500 mapping.
func InternalError(err error) *Error {
	return &Error{Kind: KindInternal, Err: err}
}

// IsValidation reports whether err is a validation-class error.
func IsValidation(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindValidation
}
