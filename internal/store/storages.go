package store

import "github.com/akwaabahomes/passcheck/internal/logger"

// Storages groups the repositories the service layer depends on.
type Storages struct {
	UserRepository            UserRepository
	PasswordHistoryRepository PasswordHistoryRepository
}

// NewStorages builds every repository on top of db.
func NewStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		UserRepository:            NewUserRepository(db, log),
		PasswordHistoryRepository: NewPasswordHistoryRepository(db, log),
	}
}
