package service

import (
	"errors"
	"net/http"
)

// Result is the uniform outcome handed to clients: a message, an HTTP
// status code and the affected entity (nil on failure).
type Result struct {
	Message string
	Code    int
	Data    any
}

// Envelope wraps a workflow outcome. On success it carries successMessage
// and payload; on failure it carries the error's client message.
func Envelope(successMessage string, payload any, err error) Result {
	if err == nil {
		return Result{Message: successMessage, Code: http.StatusOK, Data: payload}
	}

	msg := "internal server error"
	var se *Error
	if errors.As(err, &se) && se.Message != "" {
		msg = se.Message
	}
	return Result{Message: msg, Code: StatusCode(err)}
}

// StatusCode maps an error kind to its HTTP status.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
