package client

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/akwaabahomes/passcheck/internal/logger"
	"github.com/akwaabahomes/passcheck/internal/tui"
)

var errNoUI = errors.New("no terminal ui was provided")

// UI is the part of the terminal front end the app drives.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui     UI
	logger *logger.Logger
}

func NewApp(ui UI, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui, logger: logger}, nil
}

// Run opens the UI and blocks until the user quits or the process receives
// SIGINT or SIGTERM.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

var _ UI = (*tui.TUI)(nil)
