// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 AkwaabaHomes

package tui

import (
	"context"
	"strings"

	"github.com/akwaabahomes/passcheck/internal/adapter"
	"github.com/akwaabahomes/passcheck/internal/app"
	"github.com/akwaabahomes/passcheck/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the login form. A login whose password has expired goes
// straight to the change-password page.
type LoginModel struct {
	ctx     context.Context
	server  adapter.ServerAdapter
	session *session

	form       form
	submitting bool
	errMsg     string
}

func NewLoginModel(ctx context.Context, server adapter.ServerAdapter, s *session) *LoginModel {
	return &LoginModel{
		ctx:     ctx,
		server:  server,
		session: s,
		form: newForm(
			[]string{"Email", "Password"},
			[]textinput.Model{
				newInput("email", 254, false),
				newInput("password", 1024, true),
			},
		),
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResultMsg); ok {
		return m.handleResult(result)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.submitting = false
			m.errMsg = ""
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(keyMsg, keys.tab):
			m.form.focusNext()
			return m, nil
		case key.Matches(keyMsg, keys.backtab):
			m.form.focusPrev()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	return m, m.form.update(msg)
}

func (m *LoginModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	login := m.form.trimmed(0)
	pass := m.form.value(1)
	if login == "" || pass == "" {
		m.errMsg = app.MsgFieldsRequired
		return nil
	}

	m.errMsg = ""
	m.submitting = true

	ctx, server := m.ctx, m.server
	return func() tea.Msg {
		resp, err := server.Login(ctx, models.LoginRequest{Login: login, Password: pass})
		return loginResultMsg{login: login, resp: resp, err: err}
	}
}

func (m *LoginModel) handleResult(result loginResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if result.err != nil {
		m.errMsg = humanizeError(result.err)
		return m, nil
	}

	m.errMsg = ""
	m.session.login = result.login
	m.form.reset()

	if result.resp.PasswordExpired {
		return m, func() tea.Msg {
			return NavigateTo{Page: pagePassword, Payload: passwordExpiredMsg{}}
		}
	}
	return m, func() tea.Msg {
		return NavigateTo{Page: pageMenu, Payload: Notice{Text: "logged in as " + result.login}}
	}
}

func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())

	if m.submitting {
		b.WriteString("\n[Log in...]\n")
	} else {
		b.WriteString("\n[Log in]\n")
	}

	writeStatus(&b, m.errMsg, "")

	return renderPage("LOG IN", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ enter: submit")
}
