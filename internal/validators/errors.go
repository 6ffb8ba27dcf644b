package validators

import (
	"errors"
	"strings"
)

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidEmail       = errors.New("email must be a valid address")
	ErrEmptyName          = errors.New("name is required")
	ErrNameTooLong        = errors.New("name is too long")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrEmptyPassword      = errors.New("password is required")
	ErrEmptyItemID        = errors.New("item id is required")
	ErrItemIDTooLong      = errors.New("item id is too long")
	ErrEmailAlreadyExists = errors.New("email is already registered")
)

// FieldError is a validation failure bound to one request field.
type FieldError struct {
	Field string `json:"field"`
	Err   error  `json:"-"`
}

func (e FieldError) Error() string {
	return e.Field + ": " + e.Err.Error()
}

func (e FieldError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every failing field of one validated value.
type ValidationErrors []FieldError

func (ve ValidationErrors) Error() string {
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fe.Error())
	}
	return strings.Join(msgs, "; ")
}

func (ve ValidationErrors) Unwrap() []error {
	errs := make([]error, 0, len(ve))
	for _, fe := range ve {
		errs = append(errs, fe)
	}
	return errs
}

// Fields returns the failures as a field -> message map, the shape exposed in
// error responses.
func (ve ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(ve))
	for _, fe := range ve {
		if _, seen := out[fe.Field]; !seen {
			out[fe.Field] = fe.Err.Error()
		}
	}
	return out
}

// orNil turns an empty collection into a nil error.
func (ve ValidationErrors) orNil() error {
	if len(ve) == 0 {
		return nil
	}
	return ve
}
