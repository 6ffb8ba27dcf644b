// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is logged by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidJSON is returned when a request body cannot be decoded.
	ErrInvalidJSON = errors.New("invalid JSON body")

	// ErrNoUserIDInContext means a protected handler was reached without the
	// auth middleware having stored a user id.
	ErrNoUserIDInContext = errors.New("no user id in request context")
)

const msgNotAuthenticated = "not authenticated"
