// Package domainerrors defines the error taxonomy shared by services and
// transport. Services attach a Code to every error they return; the HTTP
// layer maps codes to status codes without inspecting error strings.
package domainerrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Code classifies a domain error.
type Code string

const (
	// CodeValidation marks a missing or malformed required field.
	CodeValidation Code = "validation"
	// CodeBadRequest marks a request that could not be decoded or addressed.
	CodeBadRequest Code = "bad_request"
	// CodeConflict marks a uniqueness or reference violation. It maps to
	// HTTP 400, not 409, to preserve the existing API contract.
	CodeConflict Code = "conflict"
	// CodeNotFound marks an unknown record id.
	CodeNotFound Code = "not_found"
	// CodeInternal marks an unexpected store or runtime failure.
	CodeInternal Code = "internal"
)

// Error carries a code, a human-readable message, and an optional cause.
type Error struct {
	Code    Code
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

// New builds a domain error without a cause.
func New(code Code, message string) error {
	return &Error{Code: code, Message: message}
}

// Wrap attaches a code and message to an underlying error.
func Wrap(err error, code Code, message string) error {
	return &Error{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given code anywhere in its chain.
func Is(err error, code Code) bool {
	return CodeOf(err) == code
}

// CodeOf extracts the code from err. Errors without a code are internal.
func CodeOf(err error) Code {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}

// MessageOf extracts the human-readable message from err.
func MessageOf(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal error"
}

// CauseOf returns the text of the underlying cause, or "" when there is none.
func CauseOf(err error) string {
	var de *Error
	if errors.As(err, &de) && de.Err != nil {
		return de.Err.Error()
	}
	return ""
}

// HTTPStatus maps a domain error to its HTTP status code.
func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeValidation, CodeBadRequest, CodeConflict:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
