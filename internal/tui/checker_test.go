package tui

import (
	"testing"

	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/stretchr/testify/assert"
)

func TestChecker_LiveEvaluation(t *testing.T) {
	m := NewCheckerModel(testEvaluator(), strength.DefaultPolicy())

	assert.Contains(t, m.View(), meterEmptyLabel)

	m.Update(keyRunes(strongPassword))

	assert.Equal(t, strongPassword, m.form.value(0))
	assert.Equal(t, 4, m.result.Score)
	assert.True(t, m.result.MeetsRequirements)
	assert.Contains(t, m.View(), "Very Strong")
	assert.Contains(t, m.View(), "meets the password policy")
}

func TestChecker_WeakPassword(t *testing.T) {
	m := NewCheckerModel(testEvaluator(), strength.DefaultPolicy())

	m.Update(keyRunes(weakPassword))

	assert.False(t, m.result.MeetsRequirements)
	assert.False(t, m.result.Requirements.NoCommonPatterns)
	assert.Contains(t, m.View(), "does not meet the password policy")
}

func TestChecker_PersonalInfoHint(t *testing.T) {
	m := NewCheckerModel(testEvaluator(), strength.DefaultPolicy())

	m.Update(keyRunes("Kwabena!2026#Xy"))
	assert.True(t, m.result.Requirements.NoPersonalInfo)

	m.Update(keyTab)
	m.Update(keyRunes("kwabena@example.com"))

	assert.False(t, m.result.Requirements.NoPersonalInfo)
	assert.False(t, m.result.MeetsRequirements)
}

func TestChecker_RevealToggle(t *testing.T) {
	m := NewCheckerModel(testEvaluator(), strength.DefaultPolicy())

	m.Update(keyCtrlR)
	assert.Equal(t, textinput.EchoNormal, m.form.inputs[0].EchoMode)

	m.Update(keyCtrlR)
	assert.Equal(t, textinput.EchoPassword, m.form.inputs[0].EchoMode)

	// plain inputs stay plain
	assert.Equal(t, textinput.EchoNormal, m.form.inputs[1].EchoMode)
}

func TestChecker_EscReturnsToMenu(t *testing.T) {
	m := NewCheckerModel(testEvaluator(), strength.DefaultPolicy())

	_, cmd := m.Update(keyEsc)
	requireNavigate(t, cmd, pageMenu)
}
