package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

// authAttemptRepository is the SQL implementation of [AuthAttemptRepository]
// over the append-only "auth_log" table.
type authAttemptRepository struct {
	*DB
	logger *logger.Logger
}

func NewAuthAttemptRepository(db *DB, logger *logger.Logger) AuthAttemptRepository {
	logger.Debug().Msg("creating auth attempt repository")
	return &authAttemptRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *authAttemptRepository) CreateAuthAttempt(ctx context.Context, attempt models.AuthAttempt) (models.AuthAttempt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateAuthAttemptQuery(a.builder, attempt)
	if err != nil {
		return models.AuthAttempt{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if err = a.QueryRowContext(ctx, query, args...).Scan(&attempt.ID); err != nil {
		log.Err(err).
			Str("func", "authAttemptRepository.CreateAuthAttempt").
			Bool("success", attempt.Success).
			Msg("failed to write auth attempt")
		return models.AuthAttempt{}, a.wrapError(ErrExecutingQuery, err)
	}

	return attempt, nil
}

func (a *authAttemptRepository) ListAuthAttemptsByEmail(ctx context.Context, email string, limit uint64) ([]models.AuthAttempt, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListAuthAttemptsByEmailQuery(a.builder, email, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := a.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "authAttemptRepository.ListAuthAttemptsByEmail").
			Msg("failed to execute query for auth attempts")
		return nil, a.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.AuthAttempt, 0, 16)
	for rows.Next() {
		var item models.AuthAttempt
		if scanErr := rows.Scan(
			&item.ID,
			&item.Email,
			&item.Success,
			&item.IPAddress,
			&item.UserAgent,
			&item.CreatedAt,
		); scanErr != nil {
			log.Err(scanErr).
				Str("func", "authAttemptRepository.ListAuthAttemptsByEmail").
				Msg("failed to scan auth attempt row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "authAttemptRepository.ListAuthAttemptsByEmail").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return results, nil
}
