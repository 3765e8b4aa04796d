package models

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set of a signed assertion.
//
// It embeds [jwt.RegisteredClaims] for the standard claims (iss, sub, iat,
// exp, jti) and adds the fields cross-checked against the persisted
// [SessionToken] during verification. The assertion is encoded, not
// encrypted: every field is readable by the holder.
type SessionClaims struct {
	jwt.RegisteredClaims

	// TokenID references the persisted SessionToken row.
	TokenID int64 `json:"tid"`

	// UserID is the owner of the session.
	UserID int64 `json:"uid"`

	// Email is the owner's email at issuance time.
	Email string `json:"email"`

	// Secret is the session secret in its canonical UUID string form.
	Secret string `json:"secret"`
}

// GetUserID extracts the user identifier from the "sub" (subject) claim,
// parses it as a base-10 int64, and returns the result.
func (c *SessionClaims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// Assertion is the result of a successful login: the persisted session and
// the compact signed string handed to the client.
type Assertion struct {
	Session      SessionToken `json:"-"`
	SignedString string       `json:"token"`
}

// String returns the compact JWS serialization of the assertion.
// It implements the [fmt.Stringer] interface.
func (a Assertion) String() string {
	return a.SignedString
}

// Identity is the verified owner of an assertion.
type Identity struct {
	UserID    int64     `json:"user_id"`
	Email     string    `json:"email"`
	TokenID   int64     `json:"-"`
	ExpiresAt time.Time `json:"-"`
}
