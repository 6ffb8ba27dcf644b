// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UserResponse is the success envelope of every endpoint that returns a
// user record.
type UserResponse struct {
	// Message is a human-readable description of the outcome.
	Message string `json:"message"`

	// Result is the affected user, always sanitized.
	Result User `json:"result"`
}

// TokenResponse is the success envelope of POST /signin.
type TokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	// Message describes the failure without revealing internal details.
	Message string `json:"message"`

	// Data carries optional structured details, e.g. per-field validation
	// failures.
	Data any `json:"data,omitempty"`
}
