package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_manager_mock.go -package=mock

import "context"

// CredentialManager hashes and verifies user passwords.
//
// Implementations must produce salted, one-way hashes: hashing the same
// plaintext twice yields different strings that both verify.
type CredentialManager interface {
	// Hash derives a storable hash from plaintext. Returns ctx.Err() if ctx is
	// done before hashing completes.
	Hash(ctx context.Context, plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. A malformed hash or a
	// cancelled ctx yields false.
	Verify(ctx context.Context, plaintext, hash string) bool
}
