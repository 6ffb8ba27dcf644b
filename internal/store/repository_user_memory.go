// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-identity/models"
)

// memoryUserRepository keeps users in process memory. It backs the "memory"
// storage driver used for local runs and end-to-end tests.
type memoryUserRepository struct {
	mu      sync.RWMutex
	byID    map[string]models.User
	byEmail map[string]string

	ids IDGenerator
	now func() time.Time
}

// NewMemoryUserRepository returns an empty in-memory [UserRepository].
func NewMemoryUserRepository(ids IDGenerator) UserRepository {
	return &memoryUserRepository{
		byID:    make(map[string]models.User),
		byEmail: make(map[string]string),
		ids:     ids,
		now:     time.Now,
	}
}

func (r *memoryUserRepository) FindByID(ctx context.Context, id string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.byID[id]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return copyUser(user), nil
}

func (r *memoryUserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return models.User{}, ErrUserNotFound
	}
	return copyUser(r.byID[id]), nil
}

func (r *memoryUserRepository) Save(ctx context.Context, user models.User) (models.User, error) {
	if err := ctx.Err(); err != nil {
		return models.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	previous, exists := r.byID[user.ID]
	if user.ID != "" && !exists {
		return models.User{}, ErrUserNotFound
	}
	if ownerID, taken := r.byEmail[user.Email]; taken && ownerID != user.ID {
		return models.User{}, ErrEmailAlreadyExists
	}

	now := r.now().UTC()
	if user.ID == "" {
		user.ID = r.ids.Generate()
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	if exists && previous.Email != user.Email {
		delete(r.byEmail, previous.Email)
	}
	stored := copyUser(user)
	r.byID[user.ID] = stored
	r.byEmail[user.Email] = user.ID

	return copyUser(stored), nil
}

func (r *memoryUserRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.byID[id]
	if !ok {
		return ErrUserNotFound
	}
	delete(r.byID, id)
	delete(r.byEmail, user.Email)
	return nil
}

func copyUser(u models.User) models.User {
	u.Favorites = u.CloneFavorites()
	return u
}
