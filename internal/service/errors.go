package service

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure. The transport layer maps each kind to a
// status code; nothing below it knows about status codes.
type Kind int

const (
	// KindInternal is a persistence or infrastructure failure.
	KindInternal Kind = iota
	// KindValidation is malformed input, or an unknown account on sign-in.
	KindValidation
	// KindAuth is bad credentials or a missing, invalid or expired token.
	KindAuth
	// KindNotFound is an operation targeting a user that does not exist.
	KindNotFound
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindAuth:
		return "auth"
	case KindNotFound:
		return "not_found"
	default:
		return "internal"
	}
}

// Error is the tagged error returned by every service operation.
type Error struct {
	Kind Kind
	// Message is safe to show to the caller.
	Message string
	// Data holds optional details for the caller, e.g. per-field failures.
	Data any
	// Err is the underlying cause. It is logged, never shown.
	Err error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf returns the kind of the first *Error in err's chain, or KindInternal
// if there is none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindInternal
}

func validationError(message string, data any, cause error) *Error {
	return &Error{Kind: KindValidation, Message: message, Data: data, Err: cause}
}

func authError(message string, cause error) *Error {
	return &Error{Kind: KindAuth, Message: message, Err: cause}
}

func notFoundError(cause error) *Error {
	return &Error{Kind: KindNotFound, Message: "user not found", Err: cause}
}

func internalError(cause error) *Error {
	return &Error{Kind: KindInternal, Message: "internal server error", Err: cause}
}

var (
	// ErrInvalidCredentials is the cause of every failed sign-in and of a
	// wrong old password on password change.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrTokenExpired is returned by TokenService.Verify for a token past its
	// expiry.
	ErrTokenExpired = errors.New("token is expired")

	// ErrTokenInvalid is returned by TokenService.Verify for a token with a bad
	// signature, a malformed payload or unexpected claims.
	ErrTokenInvalid = errors.New("token is invalid")

	ErrTokenCreationFailed   = errors.New("token creation failed")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")
	ErrInvalidDataProvided   = errors.New("invalid data provided")
)
