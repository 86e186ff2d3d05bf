// Package apperr defines the domain error taxonomy shared by the store
// and the HTTP layer. Store operations return *Error values for expected
// failures; anything else reaching the handlers is treated as Internal.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a domain failure.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindInvalidArgument
	KindConflict
	KindInvalidState
	KindPermissionDenied
	KindInternal
)

// Error is a domain failure with a caller-facing message.
type Error struct {
	Kind    Kind
	Message string
	Err     error // wrapped cause, may be nil
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound reports a referenced entity that does not exist.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// InvalidArgument reports malformed or missing input.
func InvalidArgument(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a booking collision on an already-taken slot.
func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// InvalidState reports an illegal reservation status transition.
func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// PermissionDenied reports a user acting outside their granted areas.
func PermissionDenied(format string, args ...any) *Error {
	return &Error{Kind: KindPermissionDenied, Message: fmt.Sprintf(format, args...)}
}

// Internal wraps an unexpected storage failure.
func Internal(err error, format string, args ...any) *Error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: err}
}

// KindOf extracts the Kind from err, or KindInternal for untyped errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf extracts the caller-facing message from err. Untyped errors
// get a generic message so storage details never leak to clients.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "internal server error"
}
