package errors

import (
	"fmt"
	"net/http"
)

// HTTPError is an error that knows how it should be rendered to a client.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// NewHTTPError creates an HTTPError whose error code equals its status.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: status, Message: message}
}

// NewHTTPErrorCode creates an HTTPError with a domain-specific error code.
func NewHTTPErrorCode(status, code int, message string) *HTTPError {
	return &HTTPError{StatusCode: status, Code: code, Message: message}
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "Internal Server Error")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "Too Many Requests")
)
