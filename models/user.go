// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// User represents an account entity used for authentication and profile
// management. It contains identity attributes, the credential hash and the
// user's favorites list.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user.
	// It is assigned by the repository on first save and never changes.
	ID string `json:"id"`

	// Email is the unique user login identifier.
	// Compared case-sensitively, exactly as stored.
	Email string `json:"email"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// It is never serialized into any outward payload.
	PasswordHash string `json:"-"`

	// Favorites is the ordered list of saved item identifiers.
	// Duplicates are allowed: adding an item twice keeps both entries.
	Favorites []string `json:"favorites"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp of the last persisted mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Sanitized returns a copy of u that is safe to hand to callers outside the
// service layer: the password hash is cleared and Favorites is never nil.
func (u User) Sanitized() User {
	u.PasswordHash = ""
	u.Favorites = u.CloneFavorites()
	return u
}

// CloneFavorites returns an independent copy of the favorites list.
// The result is an empty (non-nil) slice when the user has no favorites.
func (u User) CloneFavorites() []string {
	if len(u.Favorites) == 0 {
		return []string{}
	}
	return slices.Clone(u.Favorites)
}

// AddFavorite appends itemID to the favorites list without checking for
// existing membership.
func (u *User) AddFavorite(itemID string) {
	u.Favorites = append(u.CloneFavorites(), itemID)
}

// RemoveFavorite removes every occurrence of itemID from the favorites list.
// It reports how many entries were removed.
func (u *User) RemoveFavorite(itemID string) int {
	before := len(u.Favorites)
	u.Favorites = slices.DeleteFunc(u.CloneFavorites(), func(id string) bool {
		return id == itemID
	})
	return before - len(u.Favorites)
}
