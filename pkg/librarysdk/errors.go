package librarysdk

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is a non-200 envelope.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("library: %d %s", e.StatusCode, e.Message)
}

func statusIs(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

func IsForbidden(err error) bool  { return statusIs(err, http.StatusForbidden) }
func IsNotFound(err error) bool   { return statusIs(err, http.StatusNotFound) }
func IsBadRequest(err error) bool { return statusIs(err, http.StatusBadRequest) }
