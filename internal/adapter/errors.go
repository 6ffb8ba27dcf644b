package adapter

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("request rejected by validation")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrUnexpectedStatus    = errors.New("unexpected response status")
	ErrNotSignedIn         = errors.New("no token: sign in first")
)

// APIError is a non-2xx response of the identity API.
type APIError struct {
	StatusCode int
	Message    string
	// Data holds per-field validation failures when the server sent them.
	Data map[string]string

	err error
}

func (e *APIError) Error() string {
	return fmt.Sprintf("http %d: %s", e.StatusCode, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.err
}
