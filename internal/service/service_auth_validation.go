package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/internal/validators"
	"github.com/MKhiriev/go-identity/models"
)

type authValidationService struct {
	inner          AuthService
	validator      validators.Validator
	userRepository store.UserRepository
}

// NewAuthValidationService returns a wrapper that validates requests before
// they reach the wrapped AuthService. Sign-up additionally rejects an email
// that is already registered.
func NewAuthValidationService(userRepository store.UserRepository) AuthServiceWrapper {
	return &authValidationService{
		validator:      validators.NewUserValidator(),
		userRepository: userRepository,
	}
}

func (v *authValidationService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, asValidationError(err)
	}

	_, err := v.userRepository.FindByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return models.User{}, asValidationError(validators.ValidationErrors{
			{Field: validators.FieldEmail, Err: validators.ErrEmailAlreadyExists},
		})
	case !errors.Is(err, store.ErrUserNotFound):
		return models.User{}, internalError(err)
	}

	return v.inner.SignUp(ctx, req)
}

func (v *authValidationService) SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.Token{}, asValidationError(err)
	}

	return v.inner.SignIn(ctx, req)
}

func (v *authValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

// asValidationError exposes per-field failures as the error data.
func asValidationError(err error) *Error {
	var ve validators.ValidationErrors
	if errors.As(err, &ve) {
		return validationError("validation failed", ve.Fields(), err)
	}
	return validationError("validation failed", nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err))
}
