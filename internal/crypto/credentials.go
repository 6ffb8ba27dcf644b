// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash when the plaintext exceeds the
// 72-byte input limit of bcrypt.
var ErrPasswordTooLong = errors.New("password exceeds 72 bytes")

// MaxPasswordBytes is the longest plaintext bcrypt accepts without truncation.
const MaxPasswordBytes = 72

// BcryptCredentialManager is the bcrypt-backed [CredentialManager].
type BcryptCredentialManager struct {
	Cost int
}

// NewBcryptCredentialManager returns a manager using the given work factor.
// Costs outside bcrypt's accepted range fall back to bcrypt.DefaultCost.
func NewBcryptCredentialManager(cost int) *BcryptCredentialManager {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &BcryptCredentialManager{Cost: cost}
}

type hashResult struct {
	hash []byte
	err  error
}

// Hash implements [CredentialManager]. The key derivation runs on its own
// goroutine so a cancelled request does not wait for it.
func (m *BcryptCredentialManager) Hash(ctx context.Context, plaintext string) (string, error) {
	if len(plaintext) > MaxPasswordBytes {
		return "", ErrPasswordTooLong
	}

	// buffered so the worker never blocks after ctx is done
	done := make(chan hashResult, 1)
	go func() {
		h, err := bcrypt.GenerateFromPassword([]byte(plaintext), m.Cost)
		done <- hashResult{hash: h, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-done:
		if res.err != nil {
			return "", fmt.Errorf("bcrypt: %w", res.err)
		}
		return string(res.hash), nil
	}
}

// Verify implements [CredentialManager].
func (m *BcryptCredentialManager) Verify(ctx context.Context, plaintext, hash string) bool {
	done := make(chan bool, 1)
	go func() {
		done <- bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
	}()

	select {
	case <-ctx.Done():
		return false
	case ok := <-done:
		return ok
	}
}
