package service

import (
	"context"

	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=AuthServiceWrapper,StrengthServiceWrapper

// StrengthService evaluates and generates passwords against the server's
// configured policy.
type StrengthService interface {
	// Evaluate scores req.Password. Overrides in req.Policy are applied on
	// top of the server policy.
	Evaluate(ctx context.Context, req models.EvaluateRequest) (strength.Result, error)

	// Generate returns a random password and its evaluation. A zero length
	// selects the default length.
	Generate(ctx context.Context, length int) (models.GenerateResponse, error)

	// Policy returns the effective server policy.
	Policy(ctx context.Context) strength.Policy
}

type AuthService interface {
	RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials. The returned user has
	// MustChangePassword set when the password is flagged or older than the
	// policy allows.
	Login(ctx context.Context, req models.LoginRequest) (models.User, error)

	ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error

	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// RotationService enforces the maximum password age.
type RotationService interface {
	// MarkExpired flags every user whose password is older than the policy's
	// MaxAgeDays and returns how many were flagged.
	MarkExpired(ctx context.Context) (int64, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.VersionResponse
}

// AuthServiceWrapper defines middleware composition for AuthService.
// Implementations wrap an existing AuthService to add behavior such as
// request validation.
type AuthServiceWrapper interface {
	Wrap(AuthService) AuthService
}

// StrengthServiceWrapper is the StrengthService counterpart of
// AuthServiceWrapper.
type StrengthServiceWrapper interface {
	Wrap(StrengthService) StrengthService
}
