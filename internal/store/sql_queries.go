package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-session-auth/models"
)

var (
	userColumns         = []string{"id", "email", "password", "created_at"}
	sessionTokenColumns = []string{"id", "user_id", "token", "created_at", "expires_at", "token_type"}
	authAttemptColumns  = []string{"id", "email", "success", "ip_address", "user_agent", "created_at"}
)

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(user.TableName()).
		Columns("email", "password", "created_at").
		Values(user.Email, user.PasswordHash, user.CreatedAt.UTC()).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(models.User{}.TableName()).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

func buildCreateSessionTokenQuery(b sq.StatementBuilderType, token models.SessionToken) (string, []any, error) {
	return b.Insert(token.TableName()).
		Columns("user_id", "token", "created_at", "expires_at", "token_type").
		Values(token.UserID, token.Secret, token.CreatedAt.UTC(), token.ExpiresAt.UTC(), string(token.Type)).
		Suffix("RETURNING id").
		ToSql()
}

func buildFindSessionTokenByIDQuery(b sq.StatementBuilderType, tokenID int64) (string, []any, error) {
	return b.Select(sessionTokenColumns...).
		From(models.SessionToken{}.TableName()).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

func buildDeleteSessionTokenQuery(b sq.StatementBuilderType, tokenID int64) (string, []any, error) {
	return b.Delete(models.SessionToken{}.TableName()).
		Where(sq.Eq{"id": tokenID}).
		ToSql()
}

func buildDeleteUserSessionTokensQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Delete(models.SessionToken{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
}

func buildDeleteExpiredSessionTokensQuery(b sq.StatementBuilderType, before time.Time) (string, []any, error) {
	return b.Delete(models.SessionToken{}.TableName()).
		Where(sq.Lt{"expires_at": before.UTC()}).
		ToSql()
}

func buildCreateAuthAttemptQuery(b sq.StatementBuilderType, attempt models.AuthAttempt) (string, []any, error) {
	return b.Insert(attempt.TableName()).
		Columns("email", "success", "ip_address", "user_agent", "created_at").
		Values(attempt.Email, attempt.Success, attempt.IPAddress, attempt.UserAgent, attempt.CreatedAt.UTC()).
		Suffix("RETURNING id").
		ToSql()
}

func buildListAuthAttemptsByEmailQuery(b sq.StatementBuilderType, email string, limit uint64) (string, []any, error) {
	q := b.Select(authAttemptColumns...).
		From(models.AuthAttempt{}.TableName()).
		Where(sq.Eq{"email": email}).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	return q.ToSql()
}
