package service

import (
	"context"

	"github.com/MKhiriev/go-session-auth/models"
)

//go:generate mockgen -destination=../mock/service_mock.go -package=mock github.com/MKhiriev/go-session-auth/internal/service AuthService,TokenService

// AuthService orchestrates registration, login and assertion verification.
type AuthService interface {
	// Register creates a user. A taken email yields [ErrDuplicateEmail].
	Register(ctx context.Context, email, password string) (models.User, error)

	// Login checks credentials, writes exactly one audit record and, on
	// success, issues a signed assertion.
	Login(ctx context.Context, req models.LoginRequest) (models.Assertion, error)

	// Verify resolves an assertion string to the identity behind it.
	Verify(ctx context.Context, assertion string) (models.Identity, error)

	// Logout revokes the session of an already verified identity.
	Logout(ctx context.Context, identity models.Identity) error

	// LogoutAll revokes every session of the identity's owner and returns
	// how many were removed.
	LogoutAll(ctx context.Context, identity models.Identity) (int64, error)

	// Me returns the account of an authenticated user.
	Me(ctx context.Context, userID int64) (models.User, error)
}

// TokenService issues and verifies session assertions.
type TokenService interface {
	Issue(ctx context.Context, user models.User) (models.Assertion, error)
	Verify(ctx context.Context, assertion string) (models.Identity, error)
	// DeleteExpired purges sessions that can no longer verify.
	DeleteExpired(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetAppInfo(ctx context.Context) models.AppInfo
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// validating or metrics.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService // returns a decorated AuthService applying additional behavior
}
