package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
)

// authService is the concrete implementation of AuthService.
type authService struct {
	userRepository store.UserRepository
	credentials    crypto.CredentialManager
	tokens         TokenService

	logger *logger.Logger
}

// NewAuthService constructs an AuthService. The returned service is safe for
// concurrent use; all state is read-only after construction.
func NewAuthService(userRepository store.UserRepository, credentials crypto.CredentialManager, tokens TokenService, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		credentials:    credentials,
		tokens:         tokens,
		logger:         logger,
	}
}

// SignUp creates a new user account. The request is expected to be validated
// already (see AuthValidationService).
//
// Returns the sanitized user or:
//   - KindValidation if the email was registered concurrently;
//   - KindInternal on hashing or persistence failures.
func (a *authService) SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	hash, err := a.credentials.Hash(ctx, req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, internalError(err)
	}

	user, err := a.userRepository.Save(ctx, models.User{
		Email:        req.Email,
		Name:         req.Name,
		PasswordHash: hash,
		Favorites:    []string{},
	})
	if errors.Is(err, store.ErrEmailAlreadyExists) {
		return models.User{}, validationError("validation failed", map[string]string{"email": "email is already registered"}, err)
	}
	if err != nil {
		log.Err(err).Msg("user creation ended with error")
		return models.User{}, internalError(err)
	}

	log.Info().Str("user_id", user.ID).Msg("user signed up")
	return user.Sanitized(), nil
}

// SignIn authenticates an existing user and issues a session token.
//
// An unknown email fails with KindValidation rather than KindNotFound, so an
// unauthenticated caller cannot probe which accounts exist. Both failures
// carry the same message.
func (a *authService) SignIn(ctx context.Context, req models.SignInRequest) (models.Token, error) {
	log := logger.FromContext(ctx)

	user, err := a.userRepository.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrUserNotFound) {
		log.Debug().Msg("sign in with unknown email")
		return models.Token{}, validationError(ErrInvalidCredentials.Error(), nil, ErrInvalidCredentials)
	}
	if err != nil {
		log.Err(err).Msg("user search by email failed")
		return models.Token{}, internalError(err)
	}

	if !a.credentials.Verify(ctx, req.Password, user.PasswordHash) {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return models.Token{}, internalError(ctxErr)
		}
		log.Debug().Str("user_id", user.ID).Msg("wrong password")
		return models.Token{}, authError(ErrInvalidCredentials.Error(), ErrInvalidCredentials)
	}

	token, err := a.tokens.Issue(ctx, models.Claims{Email: user.Email, UserID: user.ID})
	if err != nil {
		log.Err(err).Str("user_id", user.ID).Msg("token issuance failed")
		return models.Token{}, err
	}

	return token, nil
}
