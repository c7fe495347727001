package app

import (
	"fmt"
	"strings"

	"github.com/dshills/scm/internal/input/shortcut"
)

// View is a snapshot of what the hosts display.
type View struct {
	Active  string
	Stack   []string
	Status  string
	History []Entry
	Stats   shortcut.Stats
	Files   int
	Scripts int
}

// Snapshot returns the current view.
func (app *Application) Snapshot() View {
	return View{
		Active:  app.root.ActiveLayer(),
		Stack:   app.root.ActiveStack(),
		Status:  app.Status(),
		History: app.History(),
		Stats:   app.root.Stats(),
		Files:   len(app.binder.Files()),
		Scripts: len(app.scripts),
	}
}

// LayerLine describes the active layer and the activation stack.
func (v View) LayerLine() string {
	if len(v.Stack) == 0 {
		return "layer: " + v.Active
	}
	return fmt.Sprintf("layer: %s (%s)", v.Active, strings.Join(v.Stack, " > "))
}

// StatsLine describes the loaded sources and dispatch counters.
func (v View) StatsLine() string {
	return fmt.Sprintf("files %d  scripts %d  events %d  handled %d  unhandled %d",
		v.Files, v.Scripts, v.Stats.Events, v.Stats.Handled, v.Stats.Unhandled)
}

// Outcome describes how an entry was dispatched.
func (e Entry) Outcome() string {
	if e.Handled {
		return "handled"
	}
	return "unhandled"
}
