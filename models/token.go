// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the identity assertion set embedded in a session token.
//
// Besides the application-specific Email and UserID fields it embeds
// [jwt.RegisteredClaims] for the standard exp/iat/iss claims.
type Claims struct {
	// Email is the email of the authenticated user at issuance time.
	Email string `json:"email"`

	// UserID is the identifier of the authenticated user.
	UserID string `json:"userId"`

	jwt.RegisteredClaims
}

// Token wraps a signed session token together with its decoded claims.
type Token struct {
	// Token is the underlying JWT token used for signing and claim inspection.
	// Excluded from JSON serialization because only the compact string form
	// is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims holds the identity claims carried by the token.
	Claims Claims `json:"-"`

	// SignedString is the compact JWS representation of the token
	// (base64url-encoded header.payload.signature).
	SignedString string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t Token) String() string {
	return t.SignedString
}
