// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the session authentication server.
//
// The primary abstraction is [AuthClient], which other services use to
// register users, obtain assertions and verify them remotely without sharing
// the signing key. The package ships an HTTP/REST implementation
// ([NewHTTPAuthClient]).
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

// AuthClient defines transport-agnostic communication with the session
// authentication server. Implementations are responsible for serialisation,
// authentication header management, and mapping transport-level errors to
// the sentinel values defined in this package.
type AuthClient interface {
	// SetToken stores the assertion attached as a bearer token to all
	// subsequent authenticated requests.
	SetToken(token string)

	// Token returns the stored assertion, or an empty string if none is set.
	Token() string

	// Register creates an account. Returns [ErrConflict] (wrapped) if the
	// email is already taken and [ErrValidation] (wrapped) if the server
	// rejects the credentials.
	Register(ctx context.Context, email, password string) (models.CreateUserResponse, error)

	// Login exchanges credentials for an assertion and stores it via
	// SetToken. Returns [ErrUnauthorized] (wrapped) on bad credentials.
	Login(ctx context.Context, email, password string) (string, error)

	// Validate verifies token on the server and returns the identity behind
	// it. Every rejected token yields [ErrUnauthorized] (wrapped).
	Validate(ctx context.Context, token string) (models.ValidateTokenResponse, error)

	// Me returns the account the stored token belongs to.
	Me(ctx context.Context) (models.UserView, error)

	// Logout revokes the stored token and clears it.
	Logout(ctx context.Context) error

	// LogoutAll revokes every session of the stored token's user and clears
	// the stored token.
	LogoutAll(ctx context.Context) error
}
