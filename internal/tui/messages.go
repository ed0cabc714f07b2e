package tui

import (
	"github.com/akwaabahomes/passcheck/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu      = "menu"
	pageChecker   = "checker"
	pageGenerator = "generator"
	pageRegister  = "register"
	pageLogin     = "login"
	pagePassword  = "password"
)

// NavigateTo switches the active page. Payload, when set, is delivered to
// the new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// Notice is a one-line status shown by the page that receives it.
type Notice struct {
	Text string
}

// passwordExpiredMsg opens the change-password page in forced mode.
type passwordExpiredMsg struct{}

type registerResultMsg struct {
	login string
	err   error
}

type loginResultMsg struct {
	login string
	resp  models.LoginResponse
	err   error
}

type changePasswordResultMsg struct {
	err error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}
