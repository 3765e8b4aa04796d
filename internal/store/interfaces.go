package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-session-auth/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists user records.
type UserRepository interface {
	// CreateUser inserts user and returns it with UserID populated.
	// A duplicate email yields [ErrEmailAlreadyExists].
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	// FindUserByEmail returns [ErrUserNotFound] when no user has email.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	// FindUserByID returns [ErrUserNotFound] when no user has userID.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionTokenRepository persists the server-side halves of sessions.
type SessionTokenRepository interface {
	// CreateSessionToken inserts token and returns it with ID populated.
	CreateSessionToken(ctx context.Context, token models.SessionToken) (models.SessionToken, error)
	// FindSessionTokenByID returns [ErrSessionTokenNotFound] for unknown ids.
	FindSessionTokenByID(ctx context.Context, tokenID int64) (models.SessionToken, error)
	// DeleteSessionToken revokes one session. Deleting a missing row yields
	// [ErrSessionTokenNotFound].
	DeleteSessionToken(ctx context.Context, tokenID int64) error
	// DeleteUserSessionTokens revokes every session of userID and returns
	// how many were removed.
	DeleteUserSessionTokens(ctx context.Context, userID int64) (int64, error)
	// DeleteExpiredSessionTokens removes sessions that expired before
	// the given time and returns how many were removed.
	DeleteExpiredSessionTokens(ctx context.Context, before time.Time) (int64, error)
}

// AuthAttemptRepository appends to the login audit log. There is no update
// or delete path.
type AuthAttemptRepository interface {
	CreateAuthAttempt(ctx context.Context, attempt models.AuthAttempt) (models.AuthAttempt, error)
	// ListAuthAttemptsByEmail returns the newest attempts for email first.
	ListAuthAttemptsByEmail(ctx context.Context, email string, limit uint64) ([]models.AuthAttempt, error)
}

// ErrorClassificator interprets driver-specific errors.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
	IsUniqueViolation(err error) bool
}
