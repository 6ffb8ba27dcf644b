package service

//go:generate mockgen -source=interfaces.go -destination=../mock/services_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

// AuthService creates accounts and opens sessions.
type AuthService interface {
	// SignUp hashes the password and persists a new user. The returned user is
	// sanitized.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn checks the credentials and issues a session token. An unknown
	// email fails with KindValidation, a wrong password with KindAuth.
	SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error)
}

// ProfileService mutates the record of an already authenticated user. Every
// operation fails with KindNotFound when userID does not exist, and returns
// the sanitized user on success.
type ProfileService interface {
	UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error)
	ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) (models.User, error)
	// DeleteUser removes the account and returns the deleted record.
	DeleteUser(ctx context.Context, userID string) (models.User, error)
	AddFavorite(ctx context.Context, userID string, req models.FavoriteRequest) (models.User, error)
	RemoveFavorite(ctx context.Context, userID string, itemID string) (models.User, error)
}

// TokenService issues and verifies session tokens.
type TokenService interface {
	// Issue signs claims (email and userId) with the configured secret and
	// lifetime.
	Issue(ctx context.Context, claims models.Claims) (models.Token, error)

	// Verify returns the claims of a valid token. It fails with ErrTokenExpired
	// or ErrTokenInvalid, both of KindAuth.
	Verify(ctx context.Context, token string) (models.Claims, error)
}

// AppInfoService exposes build information.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
