package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const inputWidth = 40

func newInput(placeholder string, charLimit int, secret bool) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = inputWidth
	if secret {
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
	}
	return in
}

// form is a set of text inputs with one of them focused.
type form struct {
	labels []string
	inputs []textinput.Model
	focus  int
}

func newForm(labels []string, inputs []textinput.Model) form {
	f := form{labels: labels, inputs: inputs}
	f.inputs[0].Focus()
	return f
}

func (f *form) focusNext() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + 1) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

func (f *form) focusPrev() {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus - 1 + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// update forwards msg to the focused input.
func (f *form) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *form) value(i int) string {
	return f.inputs[i].Value()
}

func (f *form) trimmed(i int) string {
	return strings.TrimSpace(f.inputs[i].Value())
}

// toggleReveal switches every secret input between masked and plain echo.
func (f *form) toggleReveal() {
	for i := range f.inputs {
		switch f.inputs[i].EchoMode {
		case textinput.EchoPassword:
			f.inputs[i].EchoMode = textinput.EchoNormal
		case textinput.EchoNormal:
			if f.inputs[i].EchoCharacter == '*' {
				f.inputs[i].EchoMode = textinput.EchoPassword
			}
		}
	}
}

func (f *form) reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
		f.inputs[i].Blur()
	}
	f.focus = 0
	f.inputs[f.focus].Focus()
}

// view renders the form as a two-column table.
func (f *form) view() string {
	width := 0
	for _, l := range f.labels {
		width = max(width, len(l))
	}

	var b strings.Builder
	b.WriteString(padRight("Field", width))
	b.WriteString(" │ Value\n")
	b.WriteString(strings.Repeat("─", width))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", inputWidth+2))
	b.WriteString("\n")

	for i, in := range f.inputs {
		b.WriteString(padRight(f.labels[i], width))
		b.WriteString(" │ [")
		b.WriteString(in.View())
		b.WriteString("]\n")
	}
	return b.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
