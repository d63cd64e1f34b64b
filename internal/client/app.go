package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/logger"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrNoUI = errors.New("ui is not set")

var _ Client = (*App)(nil)

type App struct {
	ui      UI
	workers BackgroundWorkers
	logger  *logger.Logger
}

// NewApp builds the client application. ui is required; workers may be nil.
func NewApp(ui UI, workers BackgroundWorkers, logger *logger.Logger) (*App, error) {
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{ui: ui, workers: workers, logger: logger}, nil
}

// Run starts the workers, blocks in the UI and stops the workers on exit.
func (a *App) Run() error {
	return a.run(context.Background())
}

func (a *App) run(ctx context.Context) error {
	if a.workers != nil {
		a.workers.Run()
		defer a.workers.Stop()
	}

	a.logger.Info().Msg("client started")
	err := a.ui.Run(ctx)
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("ui error: %w", err)
	}

	a.logger.Info().Msg("client stopped")
	return nil
}
