// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/MKhiriev/go-identity/internal/utils"
	"github.com/MKhiriev/go-identity/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserRepository_SaveAndFind(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.User{Email: "ada@example.com", Name: "Ada", PasswordHash: "h"})
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)
	assert.False(t, saved.CreatedAt.IsZero())
	assert.Equal(t, saved.CreatedAt, saved.UpdatedAt)

	byID, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, byID)

	byEmail, err := repo.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, saved.ID, byEmail.ID)
}

func TestMemoryUserRepository_ReturnsCopies(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.User{Email: "ada@example.com", Favorites: []string{"x"}})
	require.NoError(t, err)

	found, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	found.Favorites[0] = "mutated"
	found.Name = "mutated"

	again, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, again.Favorites)
	assert.Empty(t, again.Name)
}

func TestMemoryUserRepository_EmailUniqueness(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())
	ctx := context.Background()

	first, err := repo.Save(ctx, models.User{Email: "ada@example.com"})
	require.NoError(t, err)

	_, err = repo.Save(ctx, models.User{Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)

	// re-saving the owner is fine
	_, err = repo.Save(ctx, first)
	assert.NoError(t, err)
}

func TestMemoryUserRepository_EmailChangeFreesOldEmail(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())
	ctx := context.Background()

	user, err := repo.Save(ctx, models.User{Email: "old@example.com"})
	require.NoError(t, err)

	user.Email = "new@example.com"
	_, err = repo.Save(ctx, user)
	require.NoError(t, err)

	_, err = repo.FindByEmail(ctx, "old@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.Save(ctx, models.User{Email: "old@example.com"})
	assert.NoError(t, err)
}

func TestMemoryUserRepository_Delete(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())
	ctx := context.Background()

	user, err := repo.Save(ctx, models.User{Email: "ada@example.com"})
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, user.ID))
	_, err = repo.FindByID(ctx, user.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
	assert.ErrorIs(t, repo.Delete(ctx, user.ID), ErrUserNotFound)
}

func TestMemoryUserRepository_SaveAfterDelete(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())
	ctx := context.Background()

	saved, err := repo.Save(ctx, models.User{Email: "ada@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	fetched, err := repo.FindByID(ctx, saved.ID)
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, saved.ID))

	fetched.Name = "Late update"
	_, err = repo.Save(ctx, fetched)
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = repo.FindByID(ctx, saved.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = repo.FindByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserRepository_SaveUnknownID(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())

	_, err := repo.Save(context.Background(), models.User{ID: "never-stored", Email: "ada@example.com"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestMemoryUserRepository_CancelledContext(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := repo.FindByID(ctx, "any")
	assert.ErrorIs(t, err, context.Canceled)
	_, err = repo.Save(ctx, models.User{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestMemoryUserRepository_ConcurrentSaves(t *testing.T) {
	repo := NewMemoryUserRepository(utils.NewUUIDGenerator())
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, models.User{Email: fmt.Sprintf("user%d@example.com", i)})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	for i := range 50 {
		_, err := repo.FindByEmail(ctx, fmt.Sprintf("user%d@example.com", i))
		assert.NoError(t, err)
	}
}
