package apperror

import (
	"errors"
	"fmt"
)

type Kind string

const (
	KindNotFound                   Kind = "not_found"
	KindConflict                   Kind = "conflict"
	KindCapacityExceeded           Kind = "capacity_exceeded"
	KindInvalidArgument            Kind = "invalid_argument"
	KindExternalServiceUnavailable Kind = "external_service_unavailable"
	KindUnauthorized               Kind = "unauthorized"
)

// Error is a domain failure that the HTTP layer knows how to render.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, ErrNotFound) works
// regardless of message.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind && t.Message == ""
}

var (
	ErrNotFound                   = &Error{Kind: KindNotFound}
	ErrConflict                   = &Error{Kind: KindConflict}
	ErrCapacityExceeded           = &Error{Kind: KindCapacityExceeded}
	ErrInvalidArgument            = &Error{Kind: KindInvalidArgument}
	ErrExternalServiceUnavailable = &Error{Kind: KindExternalServiceUnavailable}
	ErrUnauthorized               = &Error{Kind: KindUnauthorized}
)

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(format string, args ...interface{}) *Error {
	return New(KindNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...interface{}) *Error {
	return New(KindConflict, fmt.Sprintf(format, args...))
}

func CapacityExceeded(format string, args ...interface{}) *Error {
	return New(KindCapacityExceeded, fmt.Sprintf(format, args...))
}

func InvalidArgument(format string, args ...interface{}) *Error {
	return New(KindInvalidArgument, fmt.Sprintf(format, args...))
}

func Unauthorized(format string, args ...interface{}) *Error {
	return New(KindUnauthorized, fmt.Sprintf(format, args...))
}

func Unavailable(message string, err error) *Error {
	return Wrap(KindExternalServiceUnavailable, message, err)
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
