package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

func newTestSessionTokenRepo(t *testing.T) (SessionTokenRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewSessionTokenRepository(newPostgresDB(db, logger.Nop()), logger.Nop()), mock
}

func TestSessionTokenRepository_Create(t *testing.T) {
	repo, mock := newTestSessionTokenRepo(t)

	now := time.Now()
	token := models.SessionToken{
		UserID:    7,
		Secret:    []byte("0123456789abcdef"),
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
		Type:      models.TokenTypeAuthentication,
	}

	mock.ExpectQuery("INSERT INTO auth_tokens").
		WithArgs(int64(7), token.Secret, sqlmock.AnyArg(), sqlmock.AnyArg(), "authentication").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(12))

	created, err := repo.CreateSessionToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, int64(12), created.ID)
	assert.Equal(t, token.Secret, created.Secret)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSessionTokenRepository_Create_Error(t *testing.T) {
	repo, mock := newTestSessionTokenRepo(t)

	mock.ExpectQuery("INSERT INTO auth_tokens").WillReturnError(errors.New("boom"))

	_, err := repo.CreateSessionToken(context.Background(), models.SessionToken{UserID: 1})
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSessionTokenRepository_FindByID(t *testing.T) {
	repo, mock := newTestSessionTokenRepo(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, user_id, token, created_at, expires_at, token_type FROM auth_tokens WHERE id = \\$1").
		WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(sessionTokenColumns).
			AddRow(12, 7, []byte("secret"), now, now.Add(time.Hour), "authentication"))

	token, err := repo.FindSessionTokenByID(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(7), token.UserID)
	assert.Equal(t, []byte("secret"), token.Secret)
	assert.Equal(t, models.TokenTypeAuthentication, token.Type)
}

func TestSessionTokenRepository_FindByID_NotFound(t *testing.T) {
	repo, mock := newTestSessionTokenRepo(t)

	mock.ExpectQuery("FROM auth_tokens").
		WillReturnRows(sqlmock.NewRows(sessionTokenColumns))

	_, err := repo.FindSessionTokenByID(context.Background(), 99)
	assert.ErrorIs(t, err, ErrSessionTokenNotFound)
}

func TestSessionTokenRepository_Delete(t *testing.T) {
	repo, mock := newTestSessionTokenRepo(t)

	mock.ExpectExec("DELETE FROM auth_tokens WHERE id = \\$1").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM auth_tokens WHERE id = \\$1").
		WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, repo.DeleteSessionToken(context.Background(), 12))
	assert.ErrorIs(t, repo.DeleteSessionToken(context.Background(), 12), ErrSessionTokenNotFound)
}

func TestSessionTokenRepository_DeleteUserSessionTokens(t *testing.T) {
	repo, mock := newTestSessionTokenRepo(t)

	mock.ExpectExec("DELETE FROM auth_tokens WHERE user_id = \\$1").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 3))

	n, err := repo.DeleteUserSessionTokens(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func TestSessionTokenRepository_DeleteExpired_Error(t *testing.T) {
	repo, mock := newTestSessionTokenRepo(t)

	mock.ExpectExec("DELETE FROM auth_tokens WHERE expires_at < \\$1").
		WillReturnError(errors.New("boom"))

	_, err := repo.DeleteExpiredSessionTokens(context.Background(), time.Now())
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
