package crypto

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher turns plaintext passwords into opaque stored hashes and
// checks candidates against them.
type PasswordHasher interface {
	// Hash returns a one-way hash of password. Two calls with the same input
	// produce different outputs; both verify.
	Hash(ctx context.Context, password string) (string, error)

	// Verify reports whether password matches hash. A mismatch is (false,
	// nil); a stored hash that cannot be parsed is (false, ErrMalformedHash).
	Verify(ctx context.Context, password, hash string) (bool, error)
}
