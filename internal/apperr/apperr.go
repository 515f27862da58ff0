// Package apperr defines the error taxonomy shared by all handlers.
// Each kind maps to exactly one HTTP status; the client-facing body is
// always {message, success:false}.
package apperr

import (
	"fmt"
	"net/http"
)

type Kind int

const (
	MissingField Kind = iota
	Duplicate
	InvalidCredentials
	InvalidID
	NotFound
	Unauthorized
	Internal
)

// Status returns the single HTTP status associated with the kind.
func (k Kind) Status() int {
	switch k {
	case MissingField, Duplicate, InvalidCredentials, InvalidID:
		return http.StatusBadRequest
	case NotFound:
		return http.StatusNotFound
	case Unauthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// Error is a request-outcome error carrying the kind and the exact
// message the client should see. The wrapped cause, if any, is for logs
// only and is never serialized.
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

func (e *Error) Unwrap() error { return e.Err }

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}
