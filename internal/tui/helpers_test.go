package tui

import (
	"testing"

	"github.com/akwaabahomes/passcheck/internal/strength"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

const (
	strongPassword = "Vx7!mQ2#pL9$wR4z"
	weakPassword   = "password"
)

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlR = tea.KeyMsg{Type: tea.KeyCtrlR}
)

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func testEvaluator() *strength.Evaluator {
	return strength.NewEvaluator(strength.DefaultDictionary())
}

// runCmd executes cmd and returns its message.
func runCmd(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd)
	return cmd()
}

// requireNavigate runs cmd and asserts it navigates to page.
func requireNavigate(t *testing.T, cmd tea.Cmd, page string) NavigateTo {
	t.Helper()
	nav, ok := runCmd(t, cmd).(NavigateTo)
	require.True(t, ok, "expected NavigateTo")
	require.Equal(t, page, nav.Page)
	return nav
}
