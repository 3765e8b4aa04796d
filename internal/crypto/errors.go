package crypto

import "errors"

var (
	// ErrEmptyPepper is returned by [NewPasswordCodec] when no pepper is
	// configured. It is startup-fatal.
	ErrEmptyPepper = errors.New("password pepper is empty")
	// ErrInvalidCost is returned by [NewPasswordCodec] for a bcrypt cost
	// outside [bcrypt.MinCost, bcrypt.MaxCost].
	ErrInvalidCost = errors.New("invalid password hash cost")
	// ErrMalformedHash is returned by Verify when the stored hash is not a
	// valid bcrypt hash. Callers treat it as a failed verification.
	ErrMalformedHash = errors.New("malformed password hash")
	// ErrHashing wraps unexpected bcrypt failures during Hash.
	ErrHashing = errors.New("error hashing password")
)
