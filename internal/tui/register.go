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
	registerEmail = iota
	registerName
	registerPassword
	registerRepeat
)

// RegisterModel is the sign-up form. The password is scored as it is typed
// and a password that does not meet the policy is never sent.
type RegisterModel struct {
	ctx     context.Context
	server  adapter.ServerAdapter
	session *session

	evaluator *strength.Evaluator
	policy    strength.Policy

	form       form
	result     strength.Result
	submitting bool
	errMsg     string
}

func NewRegisterModel(ctx context.Context, server adapter.ServerAdapter, s *session, evaluator *strength.Evaluator, policy strength.Policy) *RegisterModel {
	return &RegisterModel{
		ctx:       ctx,
		server:    server,
		session:   s,
		evaluator: evaluator,
		policy:    policy,
		form: newForm(
			[]string{"Email", "Name", "Password", "Repeat password"},
			[]textinput.Model{
				newInput("email", 254, false),
				newInput("name", 100, false),
				newInput("password", 1024, true),
				newInput("repeat password", 1024, true),
			},
		),
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(registerResultMsg); ok {
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
		case key.Matches(keyMsg, keys.reveal):
			m.form.toggleReveal()
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			return m, m.submit()
		}
	}

	cmd := m.form.update(msg)
	m.evaluate()
	return m, cmd
}

func (m *RegisterModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	email := m.form.trimmed(registerEmail)
	name := m.form.trimmed(registerName)
	pass := m.form.value(registerPassword)
	repeat := m.form.value(registerRepeat)

	if email == "" || pass == "" || repeat == "" {
		m.errMsg = app.MsgFieldsRequired
		return nil
	}
	if pass != repeat {
		m.errMsg = app.MsgPasswordsDoNotMatch
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
	req := models.RegisterRequest{Login: email, Name: name, Password: pass}
	return func() tea.Msg {
		return registerResultMsg{login: email, err: server.Register(ctx, req)}
	}
}

func (m *RegisterModel) handleResult(result registerResultMsg) (tea.Model, tea.Cmd) {
	m.submitting = false
	if result.err != nil {
		if ve, ok := violationResult(result.err); ok {
			m.result = ve.Result
		}
		if errors.Is(result.err, adapter.ErrConflict) {
			m.errMsg = app.MsgLoginAlreadyExists
		} else {
			m.errMsg = humanizeError(result.err)
		}
		return m, nil
	}

	m.errMsg = ""
	m.session.login = result.login
	m.form.reset()
	m.evaluate()
	return m, func() tea.Msg {
		return NavigateTo{
			Page:    pageMenu,
			Payload: Notice{Text: "registered and logged in as " + result.login},
		}
	}
}

func (m *RegisterModel) evaluate() {
	hint := &strength.IdentityHint{
		Email: m.form.trimmed(registerEmail),
		Name:  m.form.trimmed(registerName),
	}
	m.result = m.evaluator.Evaluate(m.form.value(registerPassword), m.policy, hint)
}

func (m *RegisterModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n")
	b.WriteString(renderMeter(m.result, m.policy, m.form.value(registerPassword) == ""))
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\n[Register...]\n")
	} else {
		b.WriteString("\n[Register]\n")
	}

	writeStatus(&b, m.errMsg, "")

	return renderPage("REGISTER", strings.TrimRight(b.String(), "\n"), "esc: back │ tab: next field │ ctrl+r: show/hide │ enter: submit")
}
