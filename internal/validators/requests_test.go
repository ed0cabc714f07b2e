package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/akwaabahomes/passcheck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequestValidator(t *testing.T) {
	v := NewRequestValidator()
	require.NotNil(t, v)
	_, ok := v.(*RequestValidator)
	assert.True(t, ok)
}

func TestValidate_UnsupportedType(t *testing.T) {
	v := NewRequestValidator()
	ctx := context.Background()

	assert.ErrorIs(t, v.Validate(ctx, "string"), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
	assert.ErrorIs(t, v.Validate(ctx, models.User{}), ErrUnsupportedType)

	var nilReq *models.RegisterRequest
	assert.ErrorIs(t, v.Validate(ctx, nilReq), ErrUnsupportedType)
}

func TestValidate_RegisterRequest(t *testing.T) {
	valid := models.RegisterRequest{Login: "kofi@akwaabahomes.com", Name: "Kofi Mensah", Password: "x"}

	tests := []struct {
		name    string
		mutate  func(r *models.RegisterRequest)
		wantErr error
	}{
		{"valid", func(r *models.RegisterRequest) {}, nil},
		{"empty login", func(r *models.RegisterRequest) { r.Login = "" }, ErrRequiredField},
		{"not an email", func(r *models.RegisterRequest) { r.Login = "kofi" }, ErrInvalidEmail},
		{"empty password", func(r *models.RegisterRequest) { r.Password = "" }, ErrRequiredField},
		{"huge password", func(r *models.RegisterRequest) { r.Password = strings.Repeat("a", 1025) }, ErrValueOutOfRange},
		{"long name", func(r *models.RegisterRequest) { r.Name = strings.Repeat("n", 101) }, ErrValueOutOfRange},
		{"empty name allowed", func(r *models.RegisterRequest) { r.Name = "" }, nil},
	}

	v := NewRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := valid
			tt.mutate(&req)

			err := v.Validate(context.Background(), req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			// pointer form behaves the same
			assert.ErrorIs(t, v.Validate(context.Background(), &req), tt.wantErr)
		})
	}
}

func TestValidate_ErrorNamesField(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.LoginRequest{Login: "a@b.co"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRequiredField)
	assert.Contains(t, err.Error(), "Password")
}

func TestValidate_ChangePasswordRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.ChangePasswordRequest{CurrentPassword: "a", NewPassword: "b"}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.ChangePasswordRequest{CurrentPassword: "a"}), ErrRequiredField)
}

func TestValidate_EvaluateRequest(t *testing.T) {
	v := NewRequestValidator()

	// the empty password is a legitimate evaluation input
	assert.NoError(t, v.Validate(context.Background(), models.EvaluateRequest{}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.EvaluateRequest{Password: strings.Repeat("p", 2000)}), ErrValueOutOfRange)
}

func TestValidate_GenerateRequest(t *testing.T) {
	v := NewRequestValidator()

	assert.NoError(t, v.Validate(context.Background(), models.GenerateRequest{}))
	assert.NoError(t, v.Validate(context.Background(), models.GenerateRequest{Length: 256}))
	assert.ErrorIs(t, v.Validate(context.Background(), models.GenerateRequest{Length: 257}), ErrValueOutOfRange)
	assert.ErrorIs(t, v.Validate(context.Background(), models.GenerateRequest{Length: -1}), ErrValueOutOfRange)
}

func TestValidate_PartialFields(t *testing.T) {
	v := NewRequestValidator()
	req := models.RegisterRequest{Login: "not-an-email"}

	// only the password is checked, so the bad login is ignored
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldPassword), ErrRequiredField)

	req.Password = "secret"
	assert.NoError(t, v.Validate(context.Background(), req, FieldPassword))
	assert.ErrorIs(t, v.Validate(context.Background(), req, FieldLogin), ErrInvalidEmail)
}

func TestValidate_UnknownField(t *testing.T) {
	err := NewRequestValidator().Validate(context.Background(), models.LoginRequest{}, "Nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}
