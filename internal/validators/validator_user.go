package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-identity/models"
)

// UserValidator implements the Validator interface for the identity request
// models: SignUpRequest, SignInRequest, UpdateProfileRequest,
// ChangePasswordRequest and FavoriteRequest.
//
// Unlike a fail-fast check it reports every failing field at once as
// [ValidationErrors].
type UserValidator struct {
}

// NewUserValidator constructs a new UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model, and
// ErrUnknownField if a scoped field does not apply to it.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SignUpRequest:
		return v.validateSignUp(value, fields...)
	case *models.SignUpRequest:
		return v.validateSignUp(*value, fields...)

	case models.SignInRequest:
		return v.validateSignIn(value, fields...)
	case *models.SignInRequest:
		return v.validateSignIn(*value, fields...)

	case models.UpdateProfileRequest:
		return v.validateUpdateProfile(value, fields...)
	case *models.UpdateProfileRequest:
		return v.validateUpdateProfile(*value, fields...)

	case models.ChangePasswordRequest:
		return v.validateChangePassword(value, fields...)
	case *models.ChangePasswordRequest:
		return v.validateChangePassword(*value, fields...)

	case models.FavoriteRequest:
		return v.validateFavorite(value, fields...)
	case *models.FavoriteRequest:
		return v.validateFavorite(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateSignUp(req models.SignUpRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldName, FieldPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs = appendErr(errs, FieldEmail, checkEmail(req.Email))
		case FieldName:
			errs = appendErr(errs, FieldName, checkName(req.Name))
		case FieldPassword:
			errs = appendErr(errs, FieldPassword, checkNewPassword(req.Password))
		default:
			return ErrUnknownField
		}
	}
	return errs.orNil()
}

// validateSignIn only checks presence: the password policy is not applied to
// passwords that are just compared against a stored hash.
func (v *UserValidator) validateSignIn(req models.SignInRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldCurrentPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldEmail:
			errs = appendErr(errs, FieldEmail, checkEmail(req.Email))
		case FieldCurrentPassword, FieldPassword:
			errs = appendErr(errs, FieldPassword, checkPresent(req.Password))
		default:
			return ErrUnknownField
		}
	}
	return errs.orNil()
}

func (v *UserValidator) validateUpdateProfile(req models.UpdateProfileRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldName:
			errs = appendErr(errs, FieldName, checkName(req.Name))
		default:
			return ErrUnknownField
		}
	}
	return errs.orNil()
}

func (v *UserValidator) validateChangePassword(req models.ChangePasswordRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldOldPassword, FieldNewPassword}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldOldPassword:
			errs = appendErr(errs, FieldOldPassword, checkPresent(req.OldPassword))
		case FieldNewPassword:
			errs = appendErr(errs, FieldNewPassword, checkNewPassword(req.NewPassword))
		default:
			return ErrUnknownField
		}
	}
	return errs.orNil()
}

func (v *UserValidator) validateFavorite(req models.FavoriteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldItemID}
	}

	var errs ValidationErrors
	for _, f := range fields {
		switch f {
		case FieldItemID:
			errs = appendErr(errs, FieldItemID, checkItemID(req.ItemID))
		default:
			return ErrUnknownField
		}
	}
	return errs.orNil()
}

func appendErr(errs ValidationErrors, field string, err error) ValidationErrors {
	if err == nil {
		return errs
	}
	return append(errs, FieldError{Field: field, Err: err})
}

// checkEmail accepts a bare RFC 5322 address; display names such as
// "Bob <bob@x.io>" are rejected.
func checkEmail(email string) error {
	if email == "" || strings.TrimSpace(email) != email {
		return ErrInvalidEmail
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return ErrInvalidEmail
	}
	return nil
}

func checkName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLength {
		return ErrNameTooLong
	}
	return nil
}

func checkNewPassword(password string) error {
	switch {
	case password == "":
		return ErrEmptyPassword
	case len(password) < MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}

func checkPresent(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func checkItemID(itemID string) error {
	if strings.TrimSpace(itemID) == "" {
		return ErrEmptyItemID
	}
	if len(itemID) > MaxItemIDLength {
		return ErrItemIDTooLong
	}
	return nil
}
