package service

import (
	"fmt"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
)

// Services bundles the business services handed to the transport layer.
// AuthService and ProfileService are wrapped with request validation.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	TokenService   TokenService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	credentials := crypto.NewBcryptCredentialManager(cfg.App.PasswordHashCost)
	tokenService := NewTokenService(cfg.App, logger)

	authService := NewAuthValidationService(storages.UserRepository).
		Wrap(NewAuthService(storages.UserRepository, credentials, tokenService, logger))
	profileService := NewProfileValidationService().
		Wrap(NewProfileService(storages.UserRepository, credentials, logger))

	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		AuthService:    authService,
		ProfileService: profileService,
		TokenService:   tokenService,
		AppInfoService: appInfoService,
	}, nil
}
