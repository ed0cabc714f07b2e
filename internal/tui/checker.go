package tui

import (
	"strings"

	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// CheckerModel scores a password as it is typed. Evaluation is local, using
// the policy fetched from the server at startup.
type CheckerModel struct {
	evaluator *strength.Evaluator
	policy    strength.Policy

	form   form
	result strength.Result
}

func NewCheckerModel(evaluator *strength.Evaluator, policy strength.Policy) *CheckerModel {
	return &CheckerModel{
		evaluator: evaluator,
		policy:    policy,
		form: newForm(
			[]string{"Password", "Email", "Name"},
			[]textinput.Model{
				newInput("password", 1024, true),
				newInput("optional, for the personal info check", 254, false),
				newInput("optional", 100, false),
			},
		),
	}
}

func (m *CheckerModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *CheckerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
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
		}
	}

	cmd := m.form.update(msg)
	m.evaluate()
	return m, cmd
}

func (m *CheckerModel) evaluate() {
	m.result = m.evaluator.Evaluate(m.form.value(0), m.policy, m.hint())
}

func (m *CheckerModel) hint() *strength.IdentityHint {
	email, name := m.form.trimmed(1), m.form.trimmed(2)
	if email == "" && name == "" {
		return nil
	}
	return &strength.IdentityHint{Email: email, Name: name}
}

func (m *CheckerModel) View() string {
	var b strings.Builder
	b.WriteString(m.form.view())
	b.WriteString("\n")
	b.WriteString(renderMeter(m.result, m.policy, m.form.value(0) == ""))

	return renderPage("PASSWORD STRENGTH", b.String(), "esc: back │ tab: next field │ ctrl+r: show/hide")
}
