package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/akwaabahomes/passcheck/internal/app"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	maxTUIGeneratedLength = 128
	statusTimeout         = 2 * time.Second
)

// GeneratorModel produces random passwords locally and copies them to the
// system clipboard.
type GeneratorModel struct {
	evaluator *strength.Evaluator
	policy    strength.Policy
	generate  func(length int) (string, error)
	copy      func(text string) error

	length   int
	password string
	result   strength.Result
	errMsg   string
	status   string
}

func NewGeneratorModel(evaluator *strength.Evaluator, policy strength.Policy) *GeneratorModel {
	m := &GeneratorModel{
		evaluator: evaluator,
		policy:    policy,
		generate:  strength.GenerateSecurePassword,
		copy:      clipboard.WriteAll,
		length:    max(strength.DefaultGeneratedLength, policy.MinLength),
	}
	m.regenerate()
	return m
}

func (m *GeneratorModel) Init() tea.Cmd {
	return nil
}

func (m *GeneratorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "clipboard: " + msg.err.Error()
			return m, nil
		}
		m.status = app.MsgCopied
		return m, clearStatusAfter(statusTimeout)
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.regenerate):
			m.regenerate()
		case key.Matches(msg, keys.longer):
			if m.length < maxTUIGeneratedLength {
				m.length++
				m.regenerate()
			}
		case key.Matches(msg, keys.shorter):
			if m.length > strength.MinGeneratedLength {
				m.length--
				m.regenerate()
			}
		case key.Matches(msg, keys.copy):
			if m.password == "" {
				return m, nil
			}
			return m, m.cmdCopy(m.password)
		}
	}

	return m, nil
}

func (m *GeneratorModel) regenerate() {
	m.status = ""
	password, err := m.generate(m.length)
	if err != nil {
		m.errMsg = err.Error()
		m.password = ""
		return
	}

	m.errMsg = ""
	m.password = password
	m.result = m.evaluator.Evaluate(password, m.policy, nil)
}

func (m *GeneratorModel) cmdCopy(password string) tea.Cmd {
	copyFn := m.copy
	return func() tea.Msg {
		return copiedMsg{err: copyFn(password)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func (m *GeneratorModel) View() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Length    %d\n", m.length))
	b.WriteString("Password  ")
	b.WriteString(titleStyle.Render(m.password))
	b.WriteString("\n\n")
	b.WriteString(renderMeter(m.result, m.policy, m.password == ""))
	b.WriteString("\n")

	writeStatus(&b, m.errMsg, m.status)

	return renderPage("PASSWORD GENERATOR", strings.TrimRight(b.String(), "\n"), "r: regenerate │ +/-: length │ c: copy │ esc: back")
}
