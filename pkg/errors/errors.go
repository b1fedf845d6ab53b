// Package errors defines the per-request error taxonomy. Each request
// error pairs a Newznab error code with the HTTP status class it is
// served under; the handler layer turns them into XML error documents.
package errors

import (
	"fmt"
	"net/http"
)

// Newznab error codes used by the mock.
const (
	CodeInvalidAPIKey   = 100
	CodeMissingParam    = 200
	CodeUnknownFunction = 203
	CodeNotFound        = 300
	CodeServeFailure    = 900
)

// RequestError is a non-fatal, per-request failure.
type RequestError struct {
	Code        int
	Status      int
	Description string
}

// Error implements the error interface.
func (e *RequestError) Error() string {
	return fmt.Sprintf("request error %d: %s", e.Code, e.Description)
}

// Unauthorized is returned for a missing or wrong API key.
func Unauthorized() *RequestError {
	return &RequestError{
		Code:        CodeInvalidAPIKey,
		Status:      http.StatusUnauthorized,
		Description: "Invalid API key",
	}
}

// MissingParam is returned when a required query parameter is absent.
func MissingParam(name string) *RequestError {
	return &RequestError{
		Code:        CodeMissingParam,
		Status:      http.StatusBadRequest,
		Description: fmt.Sprintf("Missing parameter (%s)", name),
	}
}

// UnknownFunction is returned for a missing or unsupported t parameter.
func UnknownFunction(t string) *RequestError {
	return &RequestError{
		Code:        CodeUnknownFunction,
		Status:      http.StatusBadRequest,
		Description: fmt.Sprintf("Function not available: %s", t),
	}
}

// NotFound is returned when no catalog item (or backing file) exists for
// the requested identifier.
func NotFound(id string) *RequestError {
	return &RequestError{
		Code:        CodeNotFound,
		Status:      http.StatusNotFound,
		Description: fmt.Sprintf("NZB with ID %s not found", id),
	}
}

// ServeFailure is returned when a backing file exists but cannot be read.
// The description deliberately carries no filesystem detail.
func ServeFailure() *RequestError {
	return &RequestError{
		Code:        CodeServeFailure,
		Status:      http.StatusInternalServerError,
		Description: "Error reading NZB file",
	}
}
