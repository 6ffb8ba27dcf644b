package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-identity/internal/config"
	"github.com/MKhiriev/go-identity/internal/logger"
	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/golang-jwt/jwt/v5"
)

// tokenService is the HS256 JWT implementation of TokenService.
type tokenService struct {
	// signKey is the process-wide secret; rotating it invalidates every
	// issued token.
	signKey       string
	issuer        string
	tokenDuration time.Duration

	// now is the clock used for issuance and expiry checks.
	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService from the application config.
func NewTokenService(cfg config.App, logger *logger.Logger) TokenService {
	return &tokenService{
		signKey:       cfg.TokenSignKey,
		issuer:        cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *tokenService) Issue(ctx context.Context, claims models.Claims) (models.Token, error) {
	token, err := utils.GenerateJWTToken(claims.Email, claims.UserID, s.issuer, s.now(), s.tokenDuration, s.signKey)
	if err != nil {
		return models.Token{}, internalError(fmt.Errorf("%w: %w", ErrTokenCreationFailed, err))
	}

	return token, nil
}

// Verify normalises every validation failure to ErrTokenExpired or
// ErrTokenInvalid; the underlying jwt error is kept in the chain for logging.
func (s *tokenService) Verify(ctx context.Context, tokenString string) (models.Claims, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, s.signKey, s.issuer, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Claims{}, authError("not authenticated", fmt.Errorf("%w: %w", ErrTokenExpired, err))
		}
		return models.Claims{}, authError("not authenticated", fmt.Errorf("%w: %w", ErrTokenInvalid, err))
	}

	return token.Claims, nil
}
