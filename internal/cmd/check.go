package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dshills/scm/internal/app"
	"github.com/dshills/scm/internal/config"
	"github.com/dshills/scm/internal/config/bindings"
)

// ErrInvalidBindings is returned by check when a file does not load.
var ErrInvalidBindings = errors.New("invalid binding files")

// Check validates binding files against the built-in actions.
type Check struct {
	Files []string `arg:"" name:"file" help:"Binding files to check." type:"existingfile"`
}

// Run is called by Kong when the check command is executed.
func (c *Check) Run(logger *slog.Logger, out io.Writer) error {
	failed := 0
	for _, path := range c.Files {
		a, err := app.New(app.Options{Bindings: []string{path}, Logger: logger})
		if err != nil {
			failed++
			fmt.Fprintf(out, "%s %s\n", errStyle.Render("✗"), path)
			fmt.Fprintln(out, describeError(err))
			continue
		}
		s, _ := a.Binder().Summary(path)
		a.Close()
		fmt.Fprintf(out, "%s %s %s\n", okStyle.Render("✓"), path,
			dimStyle.Render(fmt.Sprintf("(%d layers, %d bindings, %d shortcuts)", s.Layers, s.Bindings, s.Shortcuts)))
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrInvalidBindings, failed, len(c.Files))
	}
	return nil
}

// describeError prefers the per-binding report of a validation error.
func describeError(err error) string {
	var verr *bindings.ValidationError
	if errors.As(err, &verr) {
		return errStyle.Render(verr.Error())
	}
	var perr *config.ParseError
	if errors.As(err, &perr) {
		return errStyle.Render(perr.Error())
	}
	return errStyle.Render(err.Error())
}
