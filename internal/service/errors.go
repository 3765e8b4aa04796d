package service

import "errors"

// Expected domain outcomes. The boundary layer maps each of them to a
// response status.
var (
	// ErrDuplicateEmail is returned by registration when the email is taken.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUnauthorized conflates "no such user" and "wrong password".
	ErrUnauthorized = errors.New("invalid email or password")

	// ErrInvalidInput is returned by the validation layer before any
	// credential work is done.
	ErrInvalidInput = errors.New("invalid input")
)

// Token verification failures. External callers see all of them as
// unauthorized; they stay distinct for logging and metrics.
var (
	// ErrInvalidSignature covers bad signatures, wrong algorithms or issuers
	// and structurally broken assertions.
	ErrInvalidSignature = errors.New("token data is invalid or corrupted")

	// ErrTokenExpired is returned when the assertion expired by more than
	// the configured leeway.
	ErrTokenExpired = errors.New("token has expired")

	// ErrTokenNotFound is returned when the referenced session was revoked,
	// purged or never existed.
	ErrTokenNotFound = errors.New("token not found")

	// ErrTokenMismatch is returned when the claimed secret differs from the
	// persisted one.
	ErrTokenMismatch = errors.New("token secret does not match")

	// ErrUserMismatch is returned when the claimed owner differs from the
	// persisted one.
	ErrUserMismatch = errors.New("token user does not match")
)

var (
	// ErrStore wraps every infrastructure failure surfaced to callers.
	ErrStore = errors.New("storage failure")

	// ErrPasswordHashing is returned when the password codec fails for a
	// reason other than a mismatch.
	ErrPasswordHashing = errors.New("password hashing failed")

	// ErrTokenSigning is returned when an assertion cannot be signed.
	ErrTokenSigning = errors.New("token signing failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// IsTokenError reports whether err is one of the token verification
// failures.
func IsTokenError(err error) bool {
	return errors.Is(err, ErrInvalidSignature) ||
		errors.Is(err, ErrTokenExpired) ||
		errors.Is(err, ErrTokenNotFound) ||
		errors.Is(err, ErrTokenMismatch) ||
		errors.Is(err, ErrUserMismatch)
}
