// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

// sessionTokenRepository is the SQL implementation of
// [SessionTokenRepository] over the "auth_tokens" table.
type sessionTokenRepository struct {
	*DB
	logger *logger.Logger
}

// NewSessionTokenRepository constructs a [SessionTokenRepository] backed by
// the provided database connection and logger.
func NewSessionTokenRepository(db *DB, logger *logger.Logger) SessionTokenRepository {
	logger.Debug().Msg("creating session token repository")
	return &sessionTokenRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateSessionToken inserts token. The generated identifier is written
// back into the returned value.
func (s *sessionTokenRepository) CreateSessionToken(ctx context.Context, token models.SessionToken) (models.SessionToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSessionTokenQuery(s.builder, token)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = s.QueryRowContext(ctx, query, args...).Scan(&token.ID); err != nil {
		log.Err(err).
			Str("func", "sessionTokenRepository.CreateSessionToken").
			Int64("user_id", token.UserID).
			Msg("failed to save session token")
		return models.SessionToken{}, s.wrapError(ErrExecutingQuery, err)
	}

	return token, nil
}

// FindSessionTokenByID loads the session with the given identifier.
func (s *sessionTokenRepository) FindSessionTokenByID(ctx context.Context, tokenID int64) (models.SessionToken, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionTokenByIDQuery(s.builder, tokenID)
	if err != nil {
		return models.SessionToken{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		token     models.SessionToken
		tokenType string
	)
	err = s.QueryRowContext(ctx, query, args...).Scan(
		&token.ID,
		&token.UserID,
		&token.Secret,
		&token.CreatedAt,
		&token.ExpiresAt,
		&tokenType,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.SessionToken{}, ErrSessionTokenNotFound
	case err != nil:
		log.Err(err).
			Str("func", "sessionTokenRepository.FindSessionTokenByID").
			Int64("token_id", tokenID).
			Msg("failed to query session token")
		return models.SessionToken{}, s.wrapError(ErrExecutingQuery, err)
	}
	token.Type = models.TokenType(tokenType)

	return token, nil
}

// DeleteSessionToken removes a single session.
func (s *sessionTokenRepository) DeleteSessionToken(ctx context.Context, tokenID int64) error {
	query, args, err := buildDeleteSessionTokenQuery(s.builder, tokenID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	affected, err := s.exec(ctx, "sessionTokenRepository.DeleteSessionToken", query, args)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSessionTokenNotFound
	}

	return nil
}

// DeleteUserSessionTokens removes every session owned by userID.
func (s *sessionTokenRepository) DeleteUserSessionTokens(ctx context.Context, userID int64) (int64, error) {
	query, args, err := buildDeleteUserSessionTokensQuery(s.builder, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "sessionTokenRepository.DeleteUserSessionTokens", query, args)
}

// DeleteExpiredSessionTokens removes sessions whose expiry is before the
// given time.
func (s *sessionTokenRepository) DeleteExpiredSessionTokens(ctx context.Context, before time.Time) (int64, error) {
	query, args, err := buildDeleteExpiredSessionTokensQuery(s.builder, before)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.exec(ctx, "sessionTokenRepository.DeleteExpiredSessionTokens", query, args)
}

func (s *sessionTokenRepository) exec(ctx context.Context, funcName, query string, args []any) (int64, error) {
	log := logger.FromContext(ctx)

	res, err := s.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute statement")
		return 0, s.wrapError(ErrExecutingQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to read affected rows")
		return 0, s.wrapError(ErrExecutingQuery, err)
	}

	return affected, nil
}
