package models

import "github.com/akwaabahomes/passcheck/internal/strength"

// RegisterRequest is the body of POST /api/user/register.
type RegisterRequest struct {
	Login    string `json:"login" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"max=100"`
	Password string `json:"password" validate:"required,max=1024"`
}

// LoginRequest is the body of POST /api/user/login.
type LoginRequest struct {
	Login    string `json:"login" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,max=1024"`
}

// LoginResponse is returned alongside the bearer token on login.
type LoginResponse struct {
	// PasswordExpired is true when the password is older than the policy's
	// maximum age or was flagged by the expiry sweep. The client should send
	// the user to the change-password screen.
	PasswordExpired bool `json:"passwordExpired"`
}

// ChangePasswordRequest is the body of PUT /api/user/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword" validate:"required,max=1024"`
	NewPassword     string `json:"newPassword" validate:"required,max=1024"`
}

// PolicyViolation is the 422 body returned when a new password does not meet
// the policy. Result carries the feedback the user needs to fix it.
type PolicyViolation struct {
	Error  string          `json:"error"`
	Result strength.Result `json:"result"`
}
