// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a Go client for the identity HTTP API.
//
// The primary abstraction is [IdentityClient], which hides the REST transport
// from callers. Non-2xx responses are mapped to the sentinel values in
// errors.go, so callers can use [errors.Is] (e.g. [ErrUnauthorized] for 401)
// and [errors.As] with [*APIError] to read the message and field data.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

// IdentityClient covers every endpoint of the identity API. Authenticated
// calls use the token stored by SignIn or SetToken.
type IdentityClient interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" if none is set.
	Token() string

	// SignUp creates an account. It does not sign in.
	SignUp(ctx context.Context, req models.SignUpRequest) (models.User, error)

	// SignIn authenticates and stores the returned token via SetToken.
	SignIn(ctx context.Context, req models.SignInRequest) (string, error)

	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.User, error)
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) (models.User, error)

	// DeleteUser removes the signed-in account and clears the stored token.
	DeleteUser(ctx context.Context) (models.User, error)

	AddFavorite(ctx context.Context, itemID string) (models.User, error)
	RemoveFavorite(ctx context.Context, itemID string) (models.User, error)

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)
}
