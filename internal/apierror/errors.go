// Package apierror classifies domain failures into the uniform error body
// returned by the API.
package apierror

import (
	"errors"
	"net/http"
)

// Kinds shared by the domain packages. Domain sentinels wrap one of these so
// the boundary can classify them with errors.Is.
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
)

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every failure reported for one input, in the order
// the validator produced them.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	return "validation failed: " + e.Fields[0].Message
}

// BusinessError is a violated domain rule, e.g. a duplicate ISBN.
type BusinessError struct {
	Message string
}

func (e BusinessError) Error() string {
	return e.Message
}

// StatusError is a failure that already knows its transport status.
type StatusError struct {
	Status  int
	Message string
}

func (e StatusError) Error() string {
	if e.Message == "" {
		return http.StatusText(e.Status)
	}
	return e.Message
}

// NewStatusError returns a StatusError, defaulting the message to the
// status text.
func NewStatusError(status int, message string) StatusError {
	if message == "" {
		message = http.StatusText(status)
	}
	return StatusError{Status: status, Message: message}
}

type kindError struct {
	kind error
	msg  string
}

func (e kindError) Error() string { return e.msg }
func (e kindError) Unwrap() error { return e.kind }

// NotFound returns an error with message msg that matches ErrNotFound.
func NotFound(msg string) error {
	return kindError{kind: ErrNotFound, msg: msg}
}
