package app

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/atomicstack/lesson-console/internal/logging"
	"github.com/atomicstack/lesson-console/internal/panel"
	"github.com/atomicstack/lesson-console/internal/remote"
	"github.com/atomicstack/lesson-console/internal/telemetry"
	"github.com/atomicstack/lesson-console/internal/ui"
	"github.com/atomicstack/lesson-console/internal/view"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

const shutdownTimeout = 2 * time.Second

// Config describes user-provided application options.
type Config struct {
	BaseURL     string
	Timeout     time.Duration
	InitialView string
	Width       int
	Height      int
	ShowFooter  bool
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx := context.Background()
	provider, err := telemetry.Setup(ctx, os.Getenv)
	if err != nil {
		logging.Errorw("telemetry.setup", "error", err.Error())
	}
	provider.Install()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logging.Error(err)
		}
	}()

	model := NewModel(cfg, provider)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// NewModel wires the API client, panel and view registry into a UI model.
func NewModel(cfg Config, provider *telemetry.Provider) *ui.Model {
	client := remote.New(cfg.BaseURL,
		remote.WithTimeout(cfg.Timeout),
		remote.WithTracer(provider.Tracer()),
	)
	return ui.NewModel(ui.Options{
		Registry:    view.BuildRegistry(),
		Panel:       panel.New(client, panel.WithTimeout(cfg.Timeout)),
		Width:       cfg.Width,
		Height:      cfg.Height,
		ShowFooter:  cfg.ShowFooter,
		InitialView: cfg.InitialView,
		Zones:       zone.New(),
	})
}
