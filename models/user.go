package models

import "time"

// User is an AkwaabaHomes account as stored by the server.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"-"`

	// Login is the user's email address. It doubles as the identity hint
	// checked by the strength evaluator.
	Login string `json:"login"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// PasswordHash is the argon2id PHC string of the current password.
	PasswordHash string `json:"-"`

	// PasswordChangedAt is when the current password was set.
	PasswordChangedAt time.Time `json:"-"`

	// MustChangePassword is raised by the expiry sweep and cleared by a
	// successful password change.
	MustChangePassword bool `json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table associated with User.
func (u User) TableName() string {
	return "users"
}

// PasswordHistoryEntry is one previously used password hash.
type PasswordHistoryEntry struct {
	ID           int64
	UserID       int64
	PasswordHash string
	CreatedAt    time.Time
}

// TableName returns the name of the database table associated with
// PasswordHistoryEntry.
func (p PasswordHistoryEntry) TableName() string {
	return "password_history"
}
