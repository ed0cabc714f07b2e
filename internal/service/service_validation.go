package service

import (
	"context"
	"fmt"

	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/internal/validators"
	"github.com/akwaabahomes/passcheck/models"
)

// AuthValidationService rejects malformed account requests before they reach
// the wrapped AuthService. Validation failures match ErrInvalidDataProvided.
type AuthValidationService struct {
	inner     AuthService
	validator validators.Validator
}

func NewAuthValidationService() AuthServiceWrapper {
	return &AuthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *AuthValidationService) Wrap(inner AuthService) AuthService {
	v.inner = inner
	return v
}

func (v *AuthValidationService) RegisterUser(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.User{}, invalid("registration", err)
	}
	return v.inner.RegisterUser(ctx, req)
}

func (v *AuthValidationService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	if err := v.validator.Validate(ctx, req, validators.FieldLogin, validators.FieldPassword); err != nil {
		return models.User{}, invalid("login", err)
	}
	return v.inner.Login(ctx, req)
}

func (v *AuthValidationService) ChangePassword(ctx context.Context, userID int64, req models.ChangePasswordRequest) error {
	if err := v.validator.Validate(ctx, req); err != nil {
		return invalid("password change", err)
	}
	return v.inner.ChangePassword(ctx, userID, req)
}

func (v *AuthValidationService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	return v.inner.CreateToken(ctx, user)
}

func (v *AuthValidationService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	return v.inner.ParseToken(ctx, tokenString)
}

// StrengthValidationService bounds the size of evaluation and generation
// requests before they reach the wrapped StrengthService.
type StrengthValidationService struct {
	inner     StrengthService
	validator validators.Validator
}

func NewStrengthValidationService() StrengthServiceWrapper {
	return &StrengthValidationService{
		validator: validators.NewRequestValidator(),
	}
}

func (v *StrengthValidationService) Wrap(inner StrengthService) StrengthService {
	v.inner = inner
	return v
}

func (v *StrengthValidationService) Evaluate(ctx context.Context, req models.EvaluateRequest) (strength.Result, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return strength.Result{}, invalid("evaluation", err)
	}
	return v.inner.Evaluate(ctx, req)
}

func (v *StrengthValidationService) Generate(ctx context.Context, length int) (models.GenerateResponse, error) {
	if err := v.validator.Validate(ctx, models.GenerateRequest{Length: length}, validators.FieldLength); err != nil {
		return models.GenerateResponse{}, invalid("generation", err)
	}
	return v.inner.Generate(ctx, length)
}

func (v *StrengthValidationService) Policy(ctx context.Context) strength.Policy {
	return v.inner.Policy(ctx)
}

func invalid(op string, err error) error {
	return fmt.Errorf("%w: %s request: %w", ErrInvalidDataProvided, op, err)
}
