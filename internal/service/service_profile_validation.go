package service

import (
	"context"

	"github.com/MKhiriev/go-identity/internal/validators"
	"github.com/MKhiriev/go-identity/models"
)

type profileValidationService struct {
	inner     ProfileService
	validator validators.Validator
}

// NewProfileValidationService returns a wrapper that validates request bodies
// before they reach the wrapped ProfileService.
func NewProfileValidationService() ProfileServiceWrapper {
	return &profileValidationService{
		validator: validators.NewUserValidator(),
	}
}

func (v *profileValidationService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, asValidationError(err)
	}
	return v.inner.UpdateProfile(ctx, userID, req)
}

func (v *profileValidationService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, asValidationError(err)
	}
	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *profileValidationService) DeleteUser(ctx context.Context, userID string) (models.User, error) {
	return v.inner.DeleteUser(ctx, userID)
}

func (v *profileValidationService) AddFavorite(ctx context.Context, userID string, req models.FavoriteRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, asValidationError(err)
	}
	return v.inner.AddFavorite(ctx, userID, req)
}

func (v *profileValidationService) RemoveFavorite(ctx context.Context, userID string, itemID string) (models.User, error) {
	if err := v.validator.Validate(ctx, models.FavoriteRequest{ItemID: itemID}); err != nil {
		return models.User{}, asValidationError(err)
	}
	return v.inner.RemoveFavorite(ctx, userID, itemID)
}

func (v *profileValidationService) Wrap(inner ProfileService) ProfileService {
	v.inner = inner
	return v
}
