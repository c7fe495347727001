package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dshills/scm/internal/app"
	"github.com/dshills/scm/internal/config"
)

// Run starts the interactive host.
type Run struct {
	config.RunConfig `embed:""`

	Tea bool `help:"Use the bubbletea host instead of the tcell host." env:"SCM_TEA"`
}

// Run is called by Kong when the run command is executed.
func (r *Run) Run(logger *slog.Logger, globals *config.Globals) error {
	a, err := app.New(app.OptionsFromConfig(*globals, r.RunConfig, logger))
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if r.Tea {
		return a.RunTea(ctx)
	}

	screen, err := app.NewScreen()
	if err != nil {
		return err
	}
	return a.Run(ctx, screen)
}
