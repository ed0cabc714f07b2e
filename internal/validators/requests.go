package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	"github.com/akwaabahomes/passcheck/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to restrict validation to a subset of struct
// fields. They are the Go field names of the request models.
const (
	FieldLogin    = "Login"
	FieldPassword = "Password"
	FieldLength   = "Length"
)

// RequestValidator validates request bodies using their `validate` struct
// tags. It is safe for concurrent use.
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator returns a Validator for the request models in
// package models.
func NewRequestValidator() Validator {
	return &RequestValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks obj, which must be one of the supported request models or a
// pointer to one. When fields are given only those fields are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterRequest, models.LoginRequest, models.ChangePasswordRequest,
		models.EvaluateRequest, models.GenerateRequest:
		return v.validateStruct(ctx, value, fields...)
	case *models.RegisterRequest, *models.LoginRequest, *models.ChangePasswordRequest,
		*models.EvaluateRequest, *models.GenerateRequest:
		if reflect.ValueOf(value).IsNil() {
			return ErrUnsupportedType
		}
		return v.validateStruct(ctx, value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *RequestValidator) validateStruct(ctx context.Context, obj any, fields ...string) error {
	if len(fields) > 0 {
		if err := checkFields(obj, fields); err != nil {
			return err
		}
		return translate(v.validate.StructPartialCtx(ctx, obj, fields...))
	}
	return translate(v.validate.StructCtx(ctx, obj))
}

func checkFields(obj any, fields []string) error {
	t := reflect.Indirect(reflect.ValueOf(obj)).Type()
	for _, f := range fields {
		if _, ok := t.FieldByName(f); !ok {
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}
	return nil
}

// translate turns the first validator failure into a package sentinel
// wrapped with the offending field name.
func translate(err error) error {
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	fe := errs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s", ErrRequiredField, fe.Field())
	case "email":
		return fmt.Errorf("%w: %s", ErrInvalidEmail, fe.Field())
	case "max", "min", "lte", "gte":
		return fmt.Errorf("%w: %s must satisfy %s=%s", ErrValueOutOfRange, fe.Field(), fe.Tag(), fe.Param())
	default:
		return fmt.Errorf("%w: %s", ErrInvalidValue, fe.Field())
	}
}
