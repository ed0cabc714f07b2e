// Package tui is the terminal front end of passcheck: a live strength meter,
// a password generator and the account forms that talk to the server.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/akwaabahomes/passcheck/internal/adapter"
	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/strength"
	"github.com/akwaabahomes/passcheck/models"
	tea "github.com/charmbracelet/bubbletea"
)

// startupTimeout bounds the policy and version requests made before the UI
// opens, so that an unreachable server does not delay the local tools.
const startupTimeout = 5 * time.Second

type TUI struct {
	server    adapter.ServerAdapter
	fallback  strength.Policy
	evaluator *strength.Evaluator
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// New returns a TUI talking to server. fallback is the policy used for local
// evaluation when the server's policy cannot be fetched.
func New(server adapter.ServerAdapter, fallback strength.Policy, buildInfo models.AppBuildInfo, logger *logger.Logger) *TUI {
	return &TUI{
		server:    server,
		fallback:  fallback,
		evaluator: strength.NewEvaluator(strength.DefaultDictionary()),
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run opens the UI and blocks until the user quits.
func (t *TUI) Run(ctx context.Context) error {
	policy := t.loadPolicy(ctx)
	version := t.loadServerVersion(ctx)

	root := t.newRootModel(ctx, policy, version)
	if _, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (t *TUI) newRootModel(ctx context.Context, policy strength.Policy, version models.VersionResponse) RootModel {
	s := &session{}
	pages := map[string]tea.Model{
		pageMenu:      NewMenuModel(s),
		pageChecker:   NewCheckerModel(t.evaluator, policy),
		pageGenerator: NewGeneratorModel(t.evaluator, policy),
		pageRegister:  NewRegisterModel(ctx, t.server, s, t.evaluator, policy),
		pageLogin:     NewLoginModel(ctx, t.server, s),
		pagePassword:  NewChangePasswordModel(ctx, t.server, s, t.evaluator, policy),
	}
	return NewRootModel(pages, pageMenu, t.buildInfo, version)
}

func (t *TUI) loadPolicy(ctx context.Context) strength.Policy {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	policy, err := t.server.FetchPolicy(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Msg("using local password policy, server policy unavailable")
		return t.fallback
	}

	t.logger.Info().Int("min_length", policy.MinLength).Int("min_score", policy.MinScore).Msg("server password policy loaded")
	return policy
}

func (t *TUI) loadServerVersion(ctx context.Context) models.VersionResponse {
	ctx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	version, err := t.server.Version(ctx)
	if err != nil {
		t.logger.Warn().Err(err).Msg("server version unavailable")
		return models.VersionResponse{}
	}
	return version
}
