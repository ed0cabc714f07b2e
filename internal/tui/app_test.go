package tui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/akwaabahomes/passcheck/internal/adapter"
	"github.com/akwaabahomes/passcheck/internal/app"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/mock"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestRoot(t *testing.T) RootModel {
	t.Helper()
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	tui := New(server, strength.DefaultPolicy(), models.NewAppBuildInfo("v1.0.0", "2026-10-01", "abc123"), logger.Nop())
	return tui.newRootModel(context.Background(), strength.DefaultPolicy(), models.VersionResponse{Version: "v1.1.0"})
}

func update(t *testing.T, r RootModel, msg tea.Msg) (RootModel, tea.Cmd) {
	t.Helper()
	next, cmd := r.Update(msg)
	root, ok := next.(RootModel)
	require.True(t, ok)
	return root, cmd
}

// ── RootModel ───────────────────────────────────────────────────────────────

func TestRootModel_StartsOnMenu(t *testing.T) {
	r := newTestRoot(t)

	assert.True(t, r.isMenuPage())
	assert.Contains(t, r.View(), "PASSCHECK")
	assert.Len(t, r.pages, 6)
}

func TestRootModel_Navigate(t *testing.T) {
	r := newTestRoot(t)

	r, _ = update(t, r, NavigateTo{Page: pageGenerator})
	_, ok := r.current.(*GeneratorModel)
	assert.True(t, ok)

	r, _ = update(t, r, NavigateTo{Page: "missing"})
	_, ok = r.current.(*GeneratorModel)
	assert.True(t, ok, "unknown pages are ignored")
}

func TestRootModel_NavigateDeliversPayload(t *testing.T) {
	r := newTestRoot(t)

	r, cmd := update(t, r, NavigateTo{Page: pagePassword, Payload: passwordExpiredMsg{}})
	payload := runCmd(t, cmd)
	assert.Equal(t, passwordExpiredMsg{}, payload)

	r, _ = update(t, r, payload)
	page, ok := r.current.(*ChangePasswordModel)
	require.True(t, ok)
	assert.True(t, page.expired)
}

func TestRootModel_ForceQuit(t *testing.T) {
	r := newTestRoot(t)

	r, cmd := update(t, r, keyCtrlC)

	assert.True(t, r.quitByUser)
	assert.Equal(t, tea.QuitMsg{}, runCmd(t, cmd))
}

func TestRootModel_BuildInfo(t *testing.T) {
	r := newTestRoot(t)

	r, _ = update(t, r, keyRunes("v"))
	require.True(t, r.showBuildInfo)

	view := r.View()
	assert.Contains(t, view, "v1.0.0")
	assert.Contains(t, view, "abc123")
	assert.Contains(t, view, "Server version: v1.1.0")

	// other keys are swallowed while the window is open
	r, cmd := update(t, r, keyEnter)
	assert.Nil(t, cmd)
	assert.True(t, r.showBuildInfo)

	r, _ = update(t, r, keyEsc)
	assert.False(t, r.showBuildInfo)
}

func TestRootModel_BuildInfoOnlyFromMenu(t *testing.T) {
	r := newTestRoot(t)
	r, _ = update(t, r, NavigateTo{Page: pageChecker})

	r, _ = update(t, r, keyRunes("v"))

	assert.False(t, r.showBuildInfo)
	checker := r.current.(*CheckerModel)
	assert.Equal(t, "v", checker.form.value(0), "v is typed into the field")
}

func TestRootModel_SharedSession(t *testing.T) {
	r := newTestRoot(t)

	r, _ = update(t, r, NavigateTo{Page: pageLogin})
	r, cmd := update(t, r, loginResultMsg{login: "ama@example.com"})

	nav := runCmd(t, cmd)
	r, cmd = update(t, r, nav)
	r, _ = update(t, r, runCmd(t, cmd))

	assert.True(t, r.isMenuPage())
	assert.Contains(t, r.View(), "Logged in as ama@example.com")
	assert.Contains(t, r.View(), "logged in as ama@example.com")
}

// ── Menu ────────────────────────────────────────────────────────────────────

func TestMenu_Select(t *testing.T) {
	m := NewMenuModel(&session{})

	_, cmd := m.Update(keyEnter)
	requireNavigate(t, cmd, pageChecker)

	m.Update(keyDown)
	m.Update(keyDown)
	_, cmd = m.Update(keyEnter)
	requireNavigate(t, cmd, pageRegister)
}

func TestMenu_Bounds(t *testing.T) {
	m := NewMenuModel(&session{})

	m.Update(keyRunes("k"))
	assert.Equal(t, 0, m.idx)

	for i := 0; i < 10; i++ {
		m.Update(keyRunes("j"))
	}
	assert.Equal(t, len(m.items)-1, m.idx)
}

func TestMenu_NoticeAndQuit(t *testing.T) {
	m := NewMenuModel(&session{})

	m.Update(Notice{Text: "password changed"})
	assert.Contains(t, m.View(), "OK: password changed")

	_, cmd := m.Update(keyRunes("q"))
	assert.Equal(t, tea.QuitMsg{}, runCmd(t, cmd))
}

// ── TUI ─────────────────────────────────────────────────────────────────────

func TestTUI_LoadPolicy(t *testing.T) {
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	fallback := strength.DefaultPolicy()
	tui := New(server, fallback, models.AppBuildInfo{}, logger.Nop())

	remote := strength.DefaultPolicy()
	remote.MinLength = 16
	server.EXPECT().FetchPolicy(gomock.Any()).Return(remote, nil)
	assert.Equal(t, remote, tui.loadPolicy(context.Background()))

	server.EXPECT().FetchPolicy(gomock.Any()).Return(strength.Policy{}, errors.New("dial tcp: connection refused"))
	assert.Equal(t, fallback, tui.loadPolicy(context.Background()))
}

func TestTUI_LoadServerVersion(t *testing.T) {
	server := mock.NewMockServerAdapter(gomock.NewController(t))
	tui := New(server, strength.DefaultPolicy(), models.AppBuildInfo{}, logger.Nop())

	server.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{Version: "v2"}, nil)
	assert.Equal(t, "v2", tui.loadServerVersion(context.Background()).Version)

	server.EXPECT().Version(gomock.Any()).Return(models.VersionResponse{}, adapter.ErrBadGateway)
	assert.Empty(t, tui.loadServerVersion(context.Background()).Version)
}

// ── errors ──────────────────────────────────────────────────────────────────

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "timeout", err: errors.New("context deadline exceeded"), want: app.MsgServerUnavailable},
		{name: "rate limited", err: fmt.Errorf("%w: retry after 30s", adapter.ErrTooManyRequests), want: app.MsgRateLimited},
		{name: "unauthorized", err: adapter.ErrUnauthorized, want: app.MsgInvalidLoginPassword},
		{name: "not logged in", err: adapter.ErrNotLoggedIn, want: app.MsgLoginRequired},
		{name: "violation", err: &adapter.ViolationError{}, want: app.MsgPasswordTooWeak},
		{name: "other", err: errors.New("http 418: I'm a teapot"), want: "http 418: I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}
