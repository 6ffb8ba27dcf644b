package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-identity/internal/crypto"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/store"
	"github.com/MKhiriev/go-identity/models"
)

// profileService is the concrete implementation of ProfileService.
//
// Every mutation is a single read-modify-write against the repository. Two
// concurrent writers on the same user are last-write-wins.
type profileService struct {
	userRepository store.UserRepository
	credentials    crypto.CredentialManager

	logger *logger.Logger
}

// NewProfileService constructs a ProfileService.
func NewProfileService(userRepository store.UserRepository, credentials crypto.CredentialManager, logger *logger.Logger) ProfileService {
	return &profileService{
		userRepository: userRepository,
		credentials:    credentials,
		logger:         logger,
	}
}

func (p *profileService) UpdateProfile(ctx context.Context, userID string, req models.UpdateProfileRequest) (models.User, error) {
	user, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user.Name = req.Name

	return p.persist(ctx, user)
}

// ChangePassword runs as ordered stages over the one record fetched at the
// start. The first failing stage ends the operation.
func (p *profileService) ChangePassword(ctx context.Context, userID string, req models.ChangePasswordRequest) (models.User, error) {
	user, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user, err = p.verifyPassword(ctx, user, req.OldPassword)
	if err != nil {
		return models.User{}, err
	}

	user, err = p.rehash(ctx, user, req.NewPassword)
	if err != nil {
		return models.User{}, err
	}

	return p.persist(ctx, user)
}

func (p *profileService) DeleteUser(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	err = p.userRepository.Delete(ctx, user.ID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, notFoundError(err)
	}
	if err != nil {
		log.Err(err).Str("user_id", userID).Msg("user deletion ended with error")
		return models.User{}, internalError(err)
	}

	log.Info().Str("user_id", userID).Msg("user deleted")
	return user.Sanitized(), nil
}

func (p *profileService) AddFavorite(ctx context.Context, userID string, req models.FavoriteRequest) (models.User, error) {
	user, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	user.AddFavorite(req.ItemID)

	return p.persist(ctx, user)
}

// RemoveFavorite drops every occurrence of itemID. Removing an item that is
// not in the list is not an error.
func (p *profileService) RemoveFavorite(ctx context.Context, userID string, itemID string) (models.User, error) {
	user, err := p.findUser(ctx, userID)
	if err != nil {
		return models.User{}, err
	}

	removed := user.RemoveFavorite(itemID)
	logger.FromContext(ctx).Debug().
		Str("user_id", userID).
		Int("removed", removed).
		Msg("favorites removed")

	return p.persist(ctx, user)
}

// ── stages ────────────────────────────────────────────────────────────────────

func (p *profileService) findUser(ctx context.Context, userID string) (models.User, error) {
	user, err := p.userRepository.FindByID(ctx, userID)
	if errors.Is(err, store.ErrUserNotFound) {
		return models.User{}, notFoundError(err)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("user search by id failed")
		return models.User{}, internalError(err)
	}
	return user, nil
}

func (p *profileService) verifyPassword(ctx context.Context, user models.User, password string) (models.User, error) {
	if p.credentials.Verify(ctx, password, user.PasswordHash) {
		return user, nil
	}
	if err := ctx.Err(); err != nil {
		return models.User{}, internalError(err)
	}
	return models.User{}, authError(ErrInvalidCredentials.Error(), ErrInvalidCredentials)
}

func (p *profileService) rehash(ctx context.Context, user models.User, password string) (models.User, error) {
	hash, err := p.credentials.Hash(ctx, password)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("password hashing failed")
		return models.User{}, internalError(err)
	}
	user.PasswordHash = hash
	return user, nil
}

func (p *profileService) persist(ctx context.Context, user models.User) (models.User, error) {
	saved, err := p.userRepository.Save(ctx, user)
	switch {
	case errors.Is(err, store.ErrUserNotFound):
		return models.User{}, notFoundError(err)
	case err != nil:
		logger.FromContext(ctx).Err(err).Str("user_id", user.ID).Msg("user update ended with error")
		return models.User{}, internalError(err)
	}
	return saved.Sanitized(), nil
}
