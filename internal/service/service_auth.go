package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/crypto"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification with an audit trail
// and session revocation. Token minting and checking are delegated to a
// TokenService.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// authAttemptRepository receives exactly one record per Login call.
	authAttemptRepository store.AuthAttemptRepository

	// sessionTokenRepository is used for revocation only; issuing and
	// checking go through tokens.
	sessionTokenRepository store.SessionTokenRepository

	tokens TokenService

	// hasher hashes passwords at registration and checks them at login.
	hasher crypto.PasswordHasher

	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the repositories of
// storages.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(storages *store.Storages, tokens TokenService, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:         storages.UserRepository,
		authAttemptRepository:  storages.AuthAttemptRepository,
		sessionTokenRepository: storages.SessionTokenRepository,
		tokens:                 tokens,
		hasher:                 hasher,
		now:                    time.Now,
		logger:                 logger,
	}
}

// Register creates a new user account.
//
// There is no lookup before the insert: the unique constraint on the email
// column decides concurrent registrations, and its violation is reported as
// ErrDuplicateEmail. Any other repository failure is ErrStore.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	passwordHash, err := a.hasher.Hash(ctx, password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
	}

	user, err := a.userRepository.CreateUser(ctx, models.User{
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    a.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			log.Info().Str("email", email).Msg("registration with taken email")
			return models.User{}, ErrDuplicateEmail
		}
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	log.Info().Int64("user_id", user.UserID).Msg("user registered")

	return user, nil
}

// Login authenticates req and issues a session assertion.
//
// Exactly one AuthAttempt is written per call and always before the result
// is returned. A failed audit write takes priority over the login outcome and
// is returned as ErrStore. Unknown emails and wrong passwords are both
// ErrUnauthorized. A codec failure other than a malformed stored hash, such
// as a cancelled wait for a hashing slot, is ErrPasswordHashing.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.Assertion, error) {
	log := logger.FromContext(ctx).With().Str("email", req.Email).Logger()

	user, err := a.userRepository.FindUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			if auditErr := a.audit(ctx, req, false); auditErr != nil {
				return models.Assertion{}, auditErr
			}
			log.Info().Msg("login for unknown email")
			return models.Assertion{}, ErrUnauthorized
		}

		log.Err(err).Msg("user search by email failed")
		if auditErr := a.audit(ctx, req, false); auditErr != nil {
			log.Err(auditErr).Msg("audit after failed lookup not written")
		}
		return models.Assertion{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	ok, err := a.hasher.Verify(ctx, req.Password, user.PasswordHash)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("password verification failed")

		// only a malformed stored hash counts as a failed verification
		if !errors.Is(err, crypto.ErrMalformedHash) {
			if auditErr := a.audit(ctx, req, false); auditErr != nil {
				return models.Assertion{}, auditErr
			}
			return models.Assertion{}, fmt.Errorf("%w: %w", ErrPasswordHashing, err)
		}
		ok = false
	}

	if auditErr := a.audit(ctx, req, ok); auditErr != nil {
		return models.Assertion{}, auditErr
	}

	if !ok {
		log.Info().Int64("user_id", user.UserID).Msg("wrong password")
		return models.Assertion{}, ErrUnauthorized
	}

	assertion, err := a.tokens.Issue(ctx, user)
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("session issuing failed")
		if errors.Is(err, ErrStore) {
			return models.Assertion{}, err
		}
		return models.Assertion{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	log.Info().Int64("user_id", user.UserID).Int64("token_id", assertion.Session.ID).Msg("user logged in")

	return assertion, nil
}

// audit appends one login attempt to the audit log.
func (a *authService) audit(ctx context.Context, req models.LoginRequest, success bool) error {
	_, err := a.authAttemptRepository.CreateAuthAttempt(ctx, models.AuthAttempt{
		Email:     req.Email,
		Success:   success,
		IPAddress: req.IPAddress,
		UserAgent: req.UserAgent,
		CreatedAt: a.now().UTC(),
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("email", req.Email).Bool("success", success).Msg("auth attempt write failed")
		return fmt.Errorf("%w: writing auth attempt: %w", ErrStore, err)
	}

	return nil
}

// Verify resolves assertion to the identity behind it. It is a pure read
// path and writes no audit record.
func (a *authService) Verify(ctx context.Context, assertion string) (models.Identity, error) {
	return a.tokens.Verify(ctx, assertion)
}

// Logout revokes the session identified by identity.TokenID.
func (a *authService) Logout(ctx context.Context, identity models.Identity) error {
	log := logger.FromContext(ctx)

	if err := a.sessionTokenRepository.DeleteSessionToken(ctx, identity.TokenID); err != nil {
		if errors.Is(err, store.ErrSessionTokenNotFound) {
			return ErrTokenNotFound
		}
		log.Err(err).Int64("token_id", identity.TokenID).Msg("session revocation failed")
		return fmt.Errorf("%w: %w", ErrStore, err)
	}

	log.Info().Int64("user_id", identity.UserID).Int64("token_id", identity.TokenID).Msg("session revoked")

	return nil
}

// LogoutAll revokes every session of identity.UserID, including the one
// the identity was verified with.
func (a *authService) LogoutAll(ctx context.Context, identity models.Identity) (int64, error) {
	log := logger.FromContext(ctx)

	deleted, err := a.sessionTokenRepository.DeleteUserSessionTokens(ctx, identity.UserID)
	if err != nil {
		log.Err(err).Int64("user_id", identity.UserID).Msg("sessions revocation failed")
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}

	log.Info().Int64("user_id", identity.UserID).Int64("deleted", deleted).Msg("all sessions revoked")

	return deleted, nil
}

// Me returns the account of userID. A user deleted after the assertion was
// issued yields ErrUnauthorized.
func (a *authService) Me(ctx context.Context, userID int64) (models.User, error) {
	user, err := a.userRepository.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUnauthorized
		}
		logger.FromContext(ctx).Err(err).Int64("user_id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	return user, nil
}
