// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/config"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/internal/store"
	"github.com/MKhiriev/go-session-auth/internal/utils"
	"github.com/MKhiriev/go-session-auth/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// secretGenerator produces session secrets.
type secretGenerator interface {
	NewSecret() (uuid.UUID, error)
}

// tokenService is the concrete implementation of TokenService.
//
// An issued assertion is only half of a session: the other half is the
// SessionToken row it references by id. Verification checks the signature
// first and the persisted row second, so deleting the row revokes the
// assertion before its own expiry.
type tokenService struct {
	sessionTokenRepository store.SessionTokenRepository

	secrets secretGenerator

	// tokenSignKey is the HMAC secret used to sign and verify assertions.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in and required from every
	// assertion.
	tokenIssuer string

	tokenDuration time.Duration
	tokenLeeway   time.Duration

	now func() time.Time

	logger *logger.Logger
}

// NewTokenService constructs a TokenService persisting sessions in
// sessionTokenRepository and signing with the keys from cfg.
func NewTokenService(sessionTokenRepository store.SessionTokenRepository, cfg config.App, logger *logger.Logger) TokenService {
	return newTokenService(sessionTokenRepository, cfg, logger)
}

func newTokenService(sessionTokenRepository store.SessionTokenRepository, cfg config.App, logger *logger.Logger) *tokenService {
	return &tokenService{
		sessionTokenRepository: sessionTokenRepository,
		secrets:                utils.NewUUIDGenerator(),
		tokenSignKey:           cfg.TokenSignKey,
		tokenIssuer:            cfg.TokenIssuer,
		tokenDuration:          cfg.TokenDuration,
		tokenLeeway:            cfg.TokenLeeway,
		now:                    time.Now,
		logger:                 logger,
	}
}

// Issue mints a session for user and returns it with its signed assertion.
//
// The session row is written before signing. If signing fails the row is
// removed again on a best-effort basis; a leftover row is harmless because
// nothing references it and the cleanup worker purges it after expiry.
func (s *tokenService) Issue(ctx context.Context, user models.User) (models.Assertion, error) {
	log := logger.FromContext(ctx)

	secret, err := s.secrets.NewSecret()
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("session secret generation failed")
		return models.Assertion{}, fmt.Errorf("%w: generating session secret: %w", ErrTokenSigning, err)
	}

	// NumericDate claims carry whole seconds.
	now := s.now().UTC().Truncate(time.Second)
	session, err := s.sessionTokenRepository.CreateSessionToken(ctx, models.SessionToken{
		UserID:    user.UserID,
		Secret:    secret[:],
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenDuration),
		Type:      models.TokenTypeAuthentication,
	})
	if err != nil {
		log.Err(err).Int64("user_id", user.UserID).Msg("session token persisting failed")
		return models.Assertion{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.tokenIssuer,
			Subject:   strconv.FormatInt(user.UserID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(session.ExpiresAt),
			ID:        strconv.FormatInt(session.ID, 10),
		},
		TokenID: session.ID,
		UserID:  user.UserID,
		Email:   user.Email,
		Secret:  secret.String(),
	}

	signed, err := utils.SignSessionClaims(claims, s.tokenSignKey)
	if err != nil {
		log.Err(err).Int64("token_id", session.ID).Msg("session assertion signing failed")
		if delErr := s.sessionTokenRepository.DeleteSessionToken(context.WithoutCancel(ctx), session.ID); delErr != nil {
			log.Err(delErr).Int64("token_id", session.ID).Msg("orphan session token removal failed")
		}
		return models.Assertion{}, fmt.Errorf("%w: %w", ErrTokenSigning, err)
	}

	log.Debug().Int64("user_id", user.UserID).Int64("token_id", session.ID).Msg("session issued")

	return models.Assertion{Session: session, SignedString: signed}, nil
}

// Verify checks the signature and expiry of assertion and cross-checks it
// against the persisted session it references.
//
// Returns the verified identity or one of ErrInvalidSignature,
// ErrTokenExpired, ErrTokenNotFound, ErrUserMismatch, ErrTokenMismatch and
// ErrStore.
func (s *tokenService) Verify(ctx context.Context, assertion string) (models.Identity, error) {
	log := logger.FromContext(ctx)

	claims, err := utils.ParseSessionClaims(assertion, s.tokenSignKey, s.tokenIssuer, s.tokenLeeway, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			log.Debug().Err(err).Msg("expired assertion")
			return models.Identity{}, ErrTokenExpired
		}
		log.Debug().Err(err).Msg("assertion rejected")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}

	if claims.TokenID <= 0 || claims.UserID <= 0 {
		log.Debug().Int64("token_id", claims.TokenID).Int64("user_id", claims.UserID).Msg("assertion without session reference")
		return models.Identity{}, ErrInvalidSignature
	}
	if subject, subErr := claims.GetUserID(); subErr != nil || subject != claims.UserID {
		log.Debug().Int64("user_id", claims.UserID).Msg("assertion subject does not match uid claim")
		return models.Identity{}, ErrInvalidSignature
	}

	session, err := s.sessionTokenRepository.FindSessionTokenByID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, store.ErrSessionTokenNotFound) {
			log.Debug().Int64("token_id", claims.TokenID).Msg("session token not found")
			return models.Identity{}, ErrTokenNotFound
		}
		log.Err(err).Int64("token_id", claims.TokenID).Msg("session token lookup failed")
		return models.Identity{}, fmt.Errorf("%w: %w", ErrStore, err)
	}

	if session.Type != models.TokenTypeAuthentication || session.IsExpired(s.now(), s.tokenLeeway) {
		log.Debug().Int64("token_id", session.ID).Str("type", string(session.Type)).Msg("session token is not live")
		return models.Identity{}, ErrTokenNotFound
	}

	if session.UserID != claims.UserID {
		log.Warn().Int64("token_id", session.ID).Int64("claimed_user_id", claims.UserID).Msg("session owner mismatch")
		return models.Identity{}, ErrUserMismatch
	}

	claimed, err := uuid.Parse(claims.Secret)
	if err != nil || subtle.ConstantTimeCompare(claimed[:], session.Secret) != 1 {
		log.Warn().Int64("token_id", session.ID).Msg("session secret mismatch")
		return models.Identity{}, ErrTokenMismatch
	}

	return models.Identity{
		UserID:    session.UserID,
		Email:     claims.Email,
		TokenID:   session.ID,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

// DeleteExpired removes sessions that expired before now minus the leeway.
// Such sessions can no longer pass Verify.
func (s *tokenService) DeleteExpired(ctx context.Context) (int64, error) {
	before := s.now().UTC().Add(-s.tokenLeeway)

	deleted, err := s.sessionTokenRepository.DeleteExpiredSessionTokens(ctx, before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStore, err)
	}

	return deleted, nil
}
