package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akwaabahomes/passcheck/internal/adapter"
	"github.com/akwaabahomes/passcheck/internal/app"
	"github.com/akwaabahomes/passcheck/internal/mock"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ── Register ────────────────────────────────────────────────────────────────

func newTestRegister(t *testing.T) (*RegisterModel, *mock.MockServerAdapter, *session) {
	t.Helper()
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	s := &session{}
	return NewRegisterModel(context.Background(), server, s, testEvaluator(), strength.DefaultPolicy()), server, s
}

func fillRegister(m *RegisterModel, email, name, pass, repeat string) {
	m.form.inputs[registerEmail].SetValue(email)
	m.form.inputs[registerName].SetValue(name)
	m.form.inputs[registerPassword].SetValue(pass)
	m.form.inputs[registerRepeat].SetValue(repeat)
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name   string
		email  string
		pass   string
		repeat string
		want   string
	}{
		{name: "missing email", pass: strongPassword, repeat: strongPassword, want: app.MsgFieldsRequired},
		{name: "missing repeat", email: "ama@example.com", pass: strongPassword, want: app.MsgFieldsRequired},
		{name: "mismatch", email: "ama@example.com", pass: strongPassword, repeat: strongPassword + "x", want: app.MsgPasswordsDoNotMatch},
		{name: "weak", email: "ama@example.com", pass: weakPassword, repeat: weakPassword, want: app.MsgPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, _ := newTestRegister(t)
			fillRegister(m, tt.email, "Ama", tt.pass, tt.repeat)

			_, cmd := m.Update(keyEnter)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, m.errMsg)
			assert.False(t, m.submitting)
		})
	}
}

func TestRegister_BlocksPasswordContainingName(t *testing.T) {
	m, _, _ := newTestRegister(t)
	pass := "Ama-Serwaa!2026#Xy"
	fillRegister(m, "serwaa@example.com", "Serwaa Mensah", pass, pass)

	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgPasswordTooWeak, m.errMsg)
	assert.False(t, m.result.Requirements.NoPersonalInfo)
}

func TestRegister_Success(t *testing.T) {
	m, server, s := newTestRegister(t)
	fillRegister(m, " ama@example.com ", "Ama", strongPassword, strongPassword)

	server.EXPECT().
		Register(gomock.Any(), models.RegisterRequest{Login: "ama@example.com", Name: "Ama", Password: strongPassword}).
		Return(nil)

	_, cmd := m.Update(keyEnter)
	assert.True(t, m.submitting)
	require.NotNil(t, cmd)

	msg := runCmd(t, cmd)
	_, cmd = m.Update(msg)

	nav := requireNavigate(t, cmd, pageMenu)
	assert.Equal(t, Notice{Text: "registered and logged in as ama@example.com"}, nav.Payload)
	assert.Equal(t, "ama@example.com", s.login)
	assert.Empty(t, m.form.value(registerPassword), "form is reset")
	assert.False(t, m.submitting)
}

func TestRegister_IgnoresEnterWhileSubmitting(t *testing.T) {
	m, _, _ := newTestRegister(t)
	fillRegister(m, "ama@example.com", "Ama", strongPassword, strongPassword)
	m.submitting = true

	_, cmd := m.Update(keyEnter)
	assert.Nil(t, cmd)
}

func TestRegister_ServerErrors(t *testing.T) {
	serverResult := strength.Result{Score: 2, Feedback: []string{"This password is too common"}}

	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "login taken", err: fmt.Errorf("%w: login already exists", adapter.ErrConflict), want: app.MsgLoginAlreadyExists},
		{name: "rate limited", err: adapter.ErrTooManyRequests, want: app.MsgRateLimited},
		{name: "server down", err: errors.New(`Post "http://localhost:8080/api/user/register": dial tcp: connection refused`), want: app.MsgServerUnavailable},
		{name: "policy", err: &adapter.ViolationError{Result: serverResult}, want: app.MsgPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _, s := newTestRegister(t)
			m.submitting = true

			_, cmd := m.Update(registerResultMsg{login: "ama@example.com", err: tt.err})

			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, m.errMsg)
			assert.False(t, m.submitting)
			assert.False(t, s.loggedIn())
		})
	}

	t.Run("server feedback is shown", func(t *testing.T) {
		m, _, _ := newTestRegister(t)
		m.Update(registerResultMsg{err: &adapter.ViolationError{Result: serverResult}})
		assert.Equal(t, serverResult, m.result)
	})
}

// ── Login ───────────────────────────────────────────────────────────────────

func newTestLogin(t *testing.T) (*LoginModel, *mock.MockServerAdapter, *session) {
	t.Helper()
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	s := &session{}
	return NewLoginModel(context.Background(), server, s), server, s
}

func TestLogin_RequiresFields(t *testing.T) {
	m, _, _ := newTestLogin(t)
	m.form.inputs[0].SetValue("ama@example.com")

	_, cmd := m.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgFieldsRequired, m.errMsg)
}

func TestLogin_Success(t *testing.T) {
	m, server, s := newTestLogin(t)
	m.form.inputs[0].SetValue("ama@example.com")
	m.form.inputs[1].SetValue(strongPassword)

	server.EXPECT().
		Login(gomock.Any(), models.LoginRequest{Login: "ama@example.com", Password: strongPassword}).
		Return(models.LoginResponse{}, nil)

	_, cmd := m.Update(keyEnter)
	_, cmd = m.Update(runCmd(t, cmd))

	nav := requireNavigate(t, cmd, pageMenu)
	assert.Equal(t, Notice{Text: "logged in as ama@example.com"}, nav.Payload)
	assert.Equal(t, "ama@example.com", s.login)
}

func TestLogin_ExpiredPasswordGoesToChangePassword(t *testing.T) {
	m, server, _ := newTestLogin(t)
	m.form.inputs[0].SetValue("ama@example.com")
	m.form.inputs[1].SetValue(strongPassword)

	server.EXPECT().Login(gomock.Any(), gomock.Any()).Return(models.LoginResponse{PasswordExpired: true}, nil)

	_, cmd := m.Update(keyEnter)
	_, cmd = m.Update(runCmd(t, cmd))

	nav := requireNavigate(t, cmd, pagePassword)
	assert.Equal(t, passwordExpiredMsg{}, nav.Payload)
}

func TestLogin_Unauthorized(t *testing.T) {
	m, server, s := newTestLogin(t)
	m.form.inputs[0].SetValue("ama@example.com")
	m.form.inputs[1].SetValue("wrong")

	server.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(models.LoginResponse{}, fmt.Errorf("%w: invalid login/password", adapter.ErrUnauthorized))

	_, cmd := m.Update(keyEnter)
	_, cmd = m.Update(runCmd(t, cmd))

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgInvalidLoginPassword, m.errMsg)
	assert.False(t, s.loggedIn())
	assert.Contains(t, m.View(), app.MsgInvalidLoginPassword)
}

// ── ChangePassword ──────────────────────────────────────────────────────────

const newStrongPassword = "Hq8@tZ3!nW6^bK1%"

func newTestChangePassword(t *testing.T, login string) (*ChangePasswordModel, *mock.MockServerAdapter) {
	t.Helper()
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	s := &session{login: login}
	return NewChangePasswordModel(context.Background(), server, s, testEvaluator(), strength.DefaultPolicy()), server
}

func fillChangePassword(m *ChangePasswordModel, current, next, repeat string) {
	m.form.inputs[passwordCurrent].SetValue(current)
	m.form.inputs[passwordNew].SetValue(next)
	m.form.inputs[passwordRepeat].SetValue(repeat)
}

func TestChangePassword_Validation(t *testing.T) {
	tests := []struct {
		name    string
		login   string
		current string
		next    string
		repeat  string
		want    string
	}{
		{name: "not logged in", current: strongPassword, next: newStrongPassword, repeat: newStrongPassword, want: app.MsgLoginRequired},
		{name: "missing current", login: "ama@example.com", next: newStrongPassword, repeat: newStrongPassword, want: app.MsgFieldsRequired},
		{name: "mismatch", login: "ama@example.com", current: strongPassword, next: newStrongPassword, repeat: strongPassword, want: app.MsgPasswordsDoNotMatch},
		{name: "same as current", login: "ama@example.com", current: strongPassword, next: strongPassword, repeat: strongPassword, want: app.MsgPasswordReused},
		{name: "weak", login: "ama@example.com", current: strongPassword, next: "Short1!", repeat: "Short1!", want: app.MsgPasswordTooWeak},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newTestChangePassword(t, tt.login)
			fillChangePassword(m, tt.current, tt.next, tt.repeat)

			_, cmd := m.Update(keyEnter)

			assert.Nil(t, cmd)
			assert.Equal(t, tt.want, m.errMsg)
		})
	}
}

func TestChangePassword_Success(t *testing.T) {
	m, server := newTestChangePassword(t, "ama@example.com")
	m.Update(passwordExpiredMsg{})
	fillChangePassword(m, strongPassword, newStrongPassword, newStrongPassword)

	server.EXPECT().
		ChangePassword(gomock.Any(), models.ChangePasswordRequest{CurrentPassword: strongPassword, NewPassword: newStrongPassword}).
		Return(nil)

	_, cmd := m.Update(keyEnter)
	_, cmd = m.Update(runCmd(t, cmd))

	nav := requireNavigate(t, cmd, pageMenu)
	assert.Equal(t, Notice{Text: "password changed"}, nav.Payload)
	assert.False(t, m.expired)
	assert.Empty(t, m.form.value(passwordNew))
}

func TestChangePassword_Reused(t *testing.T) {
	m, server := newTestChangePassword(t, "ama@example.com")
	fillChangePassword(m, strongPassword, newStrongPassword, newStrongPassword)

	server.EXPECT().ChangePassword(gomock.Any(), gomock.Any()).
		Return(fmt.Errorf("%w: password was used recently", adapter.ErrConflict))

	_, cmd := m.Update(keyEnter)
	_, cmd = m.Update(runCmd(t, cmd))

	assert.Nil(t, cmd)
	assert.Equal(t, app.MsgPasswordReused, m.errMsg)
}

func TestChangePassword_ExpiredCannotLeave(t *testing.T) {
	m, _ := newTestChangePassword(t, "ama@example.com")

	m.Update(passwordExpiredMsg{})
	assert.True(t, m.expired)
	assert.Contains(t, m.View(), app.MsgPasswordExpired)

	_, cmd := m.Update(keyEsc)
	assert.Nil(t, cmd)

	m.expired = false
	_, cmd = m.Update(keyEsc)
	requireNavigate(t, cmd, pageMenu)
}

func TestChangePassword_UsesLoginAsHint(t *testing.T) {
	m, _ := newTestChangePassword(t, "kwabena@example.com")

	m.Update(keyTab)
	m.Update(keyRunes("Kwabena!2026#Xy"))

	assert.False(t, m.result.Requirements.NoPersonalInfo)
}
