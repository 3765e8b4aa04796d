package store

import "github.com/MKhiriev/go-session-auth/internal/logger"

// Storages groups the repositories of the credential store.
type Storages struct {
	UserRepository         UserRepository
	SessionTokenRepository SessionTokenRepository
	AuthAttemptRepository  AuthAttemptRepository
}

// NewStorages wires every repository to db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:         NewUserRepository(db, log),
		SessionTokenRepository: NewSessionTokenRepository(db, log),
		AuthAttemptRepository:  NewAuthAttemptRepository(db, log),
	}
}
