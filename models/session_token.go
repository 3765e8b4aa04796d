// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// TokenType tags the purpose of a persisted session secret.
type TokenType string

const (
	// TokenTypeAuthentication marks secrets backing login assertions.
	TokenTypeAuthentication TokenType = "authentication"
)

// SessionTokenSecretSize is the width in bytes of a session secret.
const SessionTokenSecretSize = 16

// SessionToken is the server-held secret bound to one user session.
//
// Every issued assertion references exactly one SessionToken by ID; deleting
// the row revokes the assertion even though its signature remains valid until
// its own expiry.
type SessionToken struct {
	// ID is assigned by the store and never reused.
	ID int64 `json:"id"`

	// UserID identifies the owner of the session.
	UserID int64 `json:"user_id"`

	// Secret holds SessionTokenSecretSize bytes of CSPRNG output.
	Secret []byte `json:"-"`

	// CreatedAt is the issuance timestamp.
	CreatedAt time.Time `json:"created_at"`

	// ExpiresAt is strictly after CreatedAt.
	ExpiresAt time.Time `json:"expires_at"`

	// Type is reserved for future token kinds (for example refresh tokens).
	Type TokenType `json:"type"`
}

// TableName returns the name of the database table
// associated with the SessionToken model.
func (t SessionToken) TableName() string {
	return "auth_tokens"
}

// IsExpired reports whether the token expired before now minus leeway.
func (t SessionToken) IsExpired(now time.Time, leeway time.Duration) bool {
	return now.After(t.ExpiresAt.Add(leeway))
}
