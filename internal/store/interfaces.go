package store

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/go-identity/models"
)

// UserRepository persists user records together with their favorites list.
//
// Implementations return copies: mutating a returned user never changes the
// stored record until it is passed back to Save.
type UserRepository interface {
	// FindByID returns the user with the given id or ErrUserNotFound.
	FindByID(ctx context.Context, id string) (models.User, error)

	// FindByEmail returns the user with exactly this email or ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (models.User, error)

	// Save inserts or fully replaces the user record. A user without an ID is
	// new: the repository assigns the ID and CreatedAt. A user with an ID must
	// still exist, otherwise ErrUserNotFound is returned and nothing is
	// written. UpdatedAt is set on every call. Returns ErrEmailAlreadyExists
	// when the email belongs to another user.
	Save(ctx context.Context, user models.User) (models.User, error)

	// Delete removes the user and its favorites, or returns ErrUserNotFound.
	Delete(ctx context.Context, id string) error
}

// IDGenerator produces identifiers for new users.
type IDGenerator interface {
	Generate() string
}
