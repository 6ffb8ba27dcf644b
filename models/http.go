// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SignUpRequest is the body of POST /signup.
type SignUpRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

// SignInRequest is the body of POST /signin.
type SignInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UpdateProfileRequest is the body of PUT /profile.
type UpdateProfileRequest struct {
	Name string `json:"name"`
}

// ChangePasswordRequest is the body of PUT /change-password.
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword"`
	NewPassword string `json:"newPassword"`
}

// FavoriteRequest carries the item identifier of a favorites mutation.
// For additions it is decoded from the body of POST /favorites/add; for
// removals it is filled from the {itemId} path parameter.
type FavoriteRequest struct {
	ItemID string `json:"itemId"`
}
