package store

import (
	"context"
	"time"

	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts and their current password hash.
type UserRepository interface {
	// CreateUser inserts user and returns it with the generated id and
	// timestamps. A duplicate login yields ErrLoginAlreadyExists.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	FindUserByLogin(ctx context.Context, login string) (models.User, error)
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UpdatePassword replaces the password hash, resets password_changed_at
	// and clears must_change_password.
	UpdatePassword(ctx context.Context, userID int64, passwordHash string) error

	// RehashPassword replaces oldHash with newHash without touching
	// password_changed_at. It is a no-op when oldHash is no longer current.
	RehashPassword(ctx context.Context, userID int64, oldHash, newHash string) error

	// MarkExpiredPasswords flags every user whose password was set before
	// the given time and returns how many rows changed.
	MarkExpiredPasswords(ctx context.Context, before time.Time) (int64, error)
}

// PasswordHistoryRepository keeps previous password hashes for reuse checks.
type PasswordHistoryRepository interface {
	AddPasswordHash(ctx context.Context, userID int64, passwordHash string) error

	// RecentPasswordHashes returns up to limit hashes, newest first.
	RecentPasswordHashes(ctx context.Context, userID int64, limit int) ([]string, error)

	// TrimPasswordHistory deletes all but the newest keep entries and returns
	// the number removed.
	TrimPasswordHistory(ctx context.Context, userID int64, keep int) (int64, error)
}

// DictionarySource loads additional denylist entries and merges them into
// the built-in dictionary.
type DictionarySource interface {
	Load(ctx context.Context) (*strength.Dictionary, error)
}
