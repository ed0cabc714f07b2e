package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/akwaabahomes/passcheck/internal/adapter"
	"github.com/akwaabahomes/passcheck/internal/app"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	passwordCurrent = iota
	passwordNew
	passwordRepeat
)

// ChangePasswordModel replaces the logged-in user's password. When opened
// after a login with an expired password it cannot be left with esc until
// the password is changed.
type ChangePasswordModel struct {
	ctx     context.Context
	server  adapter.ServerAdapter
	session *session

	evaluator *strength.Evaluator
	policy    strength.Policy

	form       form
	result     strength.Result
	expired    bool
	submitting bool
	errMsg     string
}

func NewChangePasswordModel(ctx context.Context, server adapter.ServerAdapter, s *session, evaluator *strength.Evaluator, policy strength.Policy) *ChangePasswordModel {
	return &ChangePasswordModel{
		ctx:       ctx,
		server:    server,
		session:   s,
		evaluator: evaluator,
		policy:    policy,
		form: newForm(
			[]string{"Current password", "New password", "Repeat password"},
			[]textinput.Model{
				newInput("current password", 1024, true),
				newInput("new password", 1024, true),
				newInput("repeat new password", 1024, true),
			},
		),
	}
}

func (m *ChangePasswordModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ChangePasswordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case passwordExpiredMsg:
		m.expired = true
		return m, textinput.Blink
	case changePasswordResultMsg:
		return m.handleResult(msg)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.expired {
				return m, nil
			}
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(msg, keys.reveal):
			m.form.toggleReveal()
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.submit()
		}
	}

	cmd := m.form.update(msg)
	m.evaluate()
	return m, cmd
}

func (m *ChangePasswordModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}
	if !m.session.loggedIn() {
		m.errMsg = app.MsgLoginRequired
		return nil
	}

	current := m.form.value(passwordCurrent)
	next := m.form.value(passwordNew)
	repeat := m.form.value(passwordRepeat)

	if current == "" || next == "" || repeat == "" {
		m.errMsg = app.MsgFieldsRequired
		return nil
	}
	if next != repeat {
		m.errMsg = app.MsgPasswordsDoNotMatch
		return nil
	}
	if next == current {
		m.errMsg = app.MsgPasswordReused
		return nil
	}

	m.evaluate()
	if !m.result.MeetsRequirements {
		m.errMsg = app.MsgPasswordTooWeak
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, server := m.ctx, m.server
	req := models.ChangePasswordRequest{CurrentPassword: current, NewPassword: next}
	return func() tea.Msg {
		return changePasswordResultMsg{err: server.ChangePassword(ctx, req)}
	}
}

func (m *ChangePasswordModel) handleResult(result changePasswordResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if result.err != nil {
		if ve, ok := violationResult(result.err); ok {
			m.result = ve.Result
		}
		if errors.Is(result.err, adapter.ErrConflict) {
			m.errMsg = app.MsgPasswordReused
		} else {
			m.errMsg = humanizeError(result.err)
		}
		return m, nil
	}

	m.errMsg = ""
	m.expired = false
	m.form.reset()
	m.evaluate()
	return m, func() tea.Msg {
		return NavigateTo{Page: pageMenu, Payload: Notice{Text: "password changed"}}
	}
}

func (m *ChangePasswordModel) evaluate() {
	var hint *strength.IdentityHint
	if m.session.loggedIn() {
		hint = &strength.IdentityHint{Email: m.session.login}
	}
	m.result = m.evaluator.Evaluate(m.form.value(passwordNew), m.policy, hint)
}

func (m *ChangePasswordModel) View() string {
	var b strings.Builder

	if m.expired {
		b.WriteString(bannerStyle.Render(app.MsgPasswordExpired))
		b.WriteString("\n\n")
	}

	b.WriteString(m.form.view())
	b.WriteString("\n")
	b.WriteString(renderMeter(m.result, m.policy, m.form.value(passwordNew) == ""))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Change password...]\n")
	} else {
		b.WriteString("\n[Change password]\n")
	}

	writeStatus(&b, m.errMsg, "")

	hotKeys := "esc: back │ tab: next field │ ctrl+r: show/hide │ enter: submit"
	if m.expired {
		hotKeys = "tab: next field │ ctrl+r: show/hide │ enter: submit"
	}
	return renderPage("CHANGE PASSWORD", strings.TrimRight(b.String(), "\n"), hotKeys)
}
