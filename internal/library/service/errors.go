package service

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by a workflow matches exactly one of
// these with errors.Is.
var (
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrInternal   = errors.New("internal error")
)

// Error carries a client-safe Message alongside its Kind. Err, when set, is
// the underlying cause and is never shown to clients.
type Error struct {
	Kind    error
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Is(target error) bool { return target == e.Kind }

func (e *Error) Unwrap() error { return e.Err }

func forbidden(format string, args ...any) error {
	return &Error{Kind: ErrForbidden, Message: fmt.Sprintf(format, args...)}
}

func notFound(format string, args ...any) error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func badRequest(format string, args ...any) error {
	return &Error{Kind: ErrBadRequest, Message: fmt.Sprintf(format, args...)}
}

func internal(message string, err error) error {
	return &Error{Kind: ErrInternal, Message: message, Err: err}
}

// asServiceError passes workflow errors through and turns anything else
// into an internal error with the given client message.
func asServiceError(message string, err error) error {
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	return internal(message, err)
}
