package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dshills/scm/internal/app"
	"github.com/dshills/scm/internal/input/layer"
)

// List prints the shortcuts registered by binding files.
type List struct {
	Files   []string `arg:"" name:"file" help:"Binding files to load." type:"existingfile"`
	Layer   string   `help:"Only list this layer."`
	Actions bool     `help:"List the available actions instead of shortcuts."`
}

// Run is called by Kong when the list command is executed.
func (l *List) Run(logger *slog.Logger, out io.Writer) error {
	a, err := app.New(app.Options{Bindings: l.Files, Logger: logger})
	if err != nil {
		return err
	}
	defer a.Close()

	if l.Actions {
		rows := make([][]string, 0)
		for _, name := range a.Catalog().Names() {
			action, _ := a.Catalog().Lookup(name)
			rows = append(rows, []string{name, dimStyle.Render(action.Description)})
		}
		writeRows(out, rows)
		return nil
	}

	root := a.Root()
	for _, name := range root.Layers() {
		if l.Layer != "" && name != layer.Name(l.Layer).String() {
			continue
		}
		shortcuts := root.Shortcuts(name)
		if len(shortcuts) == 0 {
			continue
		}

		fmt.Fprintln(out, layerStyle.Render(name))
		rows := make([][]string, 0, len(shortcuts))
		for _, sc := range shortcuts {
			var handlers []string
			// Listed in dispatch order, the handler tried first comes first.
			bindings := root.Bindings(name, sc)
			for i := len(bindings) - 1; i >= 0; i-- {
				h := bindings[i].Handler.Name()
				if bindings[i].Default {
					h += dimStyle.Render(" (default)")
				}
				handlers = append(handlers, h)
			}
			rows = append(rows, []string{"  " + sc, strings.Join(handlers, ", ")})
		}
		writeRows(out, rows)
	}
	return nil
}
