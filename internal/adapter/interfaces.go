// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

// Package adapter provides the terminal client's view of the passcheck
// server.
//
// [ServerAdapter] decouples the TUI from the transport. The package ships an
// HTTP/REST implementation ([NewHTTPServerAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] without looking at status
// codes (e.g. [ErrConflict] for 409, [ErrUnauthorized] for 401). A rejected
// password comes back as a [*ViolationError] carrying the server's feedback.
package adapter

import (
	"context"

	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines communication with the passcheck server.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" before login.
	Token() string

	// FetchPolicy returns the password policy the server enforces.
	FetchPolicy(ctx context.Context) (strength.Policy, error)

	// Evaluate asks the server to score a password. The client normally
	// scores locally; this is used to confirm a result before submitting.
	Evaluate(ctx context.Context, req models.EvaluateRequest) (models.EvaluateResponse, error)

	// Generate asks the server for a random password. A zero length selects
	// the server default.
	Generate(ctx context.Context, length int) (models.GenerateResponse, error)

	// Register creates an account and stores the returned bearer token.
	Register(ctx context.Context, req models.RegisterRequest) error

	// Login authenticates and stores the returned bearer token. The
	// response tells whether the password has to be changed.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResponse, error)

	// ChangePassword replaces the password of the logged-in user.
	ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error

	// Version returns the server's build information.
	Version(ctx context.Context) (models.VersionResponse, error)
}
