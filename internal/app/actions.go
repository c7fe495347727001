package app

import (
	"errors"
	"fmt"
	"slices"

	"github.com/dshills/scm/internal/config/bindings"
	"github.com/dshills/scm/internal/input/keymap"
	"github.com/dshills/scm/internal/input/layer"
)

// Built-in action names.
const (
	ActionQuit   = "app.quit"
	ActionEcho   = "app.echo"
	ActionPass   = "app.pass"
	ActionReload = "app.reload"
	ActionDebug  = "app.debug"
	ActionStats  = "app.stats"
	ActionMain   = "layer.main"
)

// Per-layer action prefixes. Binding files get one action of each kind for
// every layer they name, e.g. "layer.activate:nav".
const (
	LayerActivatePrefix   = "layer.activate:"
	LayerDeactivatePrefix = "layer.deactivate:"
	LayerTogglePrefix     = "layer.toggle:"
)

func (app *Application) registerBuiltins() error {
	actions := []bindings.Action{
		{
			Name:        ActionQuit,
			Description: "Exit the interactive host",
			Fn: func(string, int, int) bool {
				app.Quit()
				return true
			},
		},
		{
			Name:        ActionEcho,
			Description: "Show the shortcut in the status line",
			Fn: func(sc string, modifier, rangeLow int) bool {
				if modifier == keymap.NoModifier {
					app.SetStatus(sc)
				} else {
					app.SetStatus(fmt.Sprintf("%s (index %d from %d)", sc, modifier, rangeLow))
				}
				return true
			},
		},
		{
			Name:        ActionPass,
			Description: "Decline the shortcut so earlier handlers run",
			Fn: func(string, int, int) bool {
				return false
			},
		},
		{
			Name:        ActionReload,
			Description: "Reload every binding file",
			Fn: func(string, int, int) bool {
				if err := app.ReloadAll(); err != nil {
					app.logger.Error("reload failed", "error", err)
					app.SetStatus("reload failed")
					return true
				}
				app.SetStatus("bindings reloaded")
				return true
			},
		},
		{
			Name:        ActionDebug,
			Description: "Toggle dispatch tracing",
			Fn: func(string, int, int) bool {
				enabled := !app.root.Debug()
				app.root.SetDebug(enabled)
				app.SetStatus(fmt.Sprintf("debug %t", enabled))
				return true
			},
		},
		{
			Name:        ActionStats,
			Description: "Show dispatch counters",
			Fn: func(string, int, int) bool {
				s := app.root.Stats()
				app.SetStatus(fmt.Sprintf("events %d, handled %d, unhandled %d", s.Events, s.Handled, s.Unhandled))
				return true
			},
		},
		{
			Name:        ActionMain,
			Description: "Return to the main layer",
			Fn: func(string, int, int) bool {
				app.root.Create(appContext).Activate()
				return true
			},
		},
	}

	for _, a := range actions {
		if err := app.catalog.Register(a); err != nil {
			return err
		}
	}
	return nil
}

// registerLayerActions adds the activate, deactivate and toggle actions of
// every named layer that does not have them yet.
func (app *Application) registerLayerActions(names []string) error {
	for _, name := range names {
		if layer.Name(name).IsMain() {
			continue
		}
		for _, a := range app.layerActions(name) {
			if _, ok := app.catalog.Lookup(a.Name); ok {
				continue
			}
			if err := app.catalog.Register(a); err != nil && !errors.Is(err, bindings.ErrDuplicateAction) {
				return err
			}
		}
	}
	return nil
}

func (app *Application) layerActions(name string) []bindings.Action {
	m := app.root.Create(appContext, layer.Name(name))
	return []bindings.Action{
		{
			Name:        LayerActivatePrefix + name,
			Description: "Activate layer " + name,
			Fn: func(string, int, int) bool {
				m.Activate()
				return true
			},
		},
		{
			Name:        LayerDeactivatePrefix + name,
			Description: "Deactivate layer " + name,
			Fn: func(string, int, int) bool {
				if err := m.Deactivate(); err != nil {
					app.SetStatus(err.Error())
					return false
				}
				return true
			},
		},
		{
			Name:        LayerTogglePrefix + name,
			Description: "Toggle layer " + name,
			Fn: func(string, int, int) bool {
				if slices.Contains(app.root.ActiveStack(), m.Layer()) {
					if err := m.Deactivate(); err != nil {
						app.SetStatus(err.Error())
						return false
					}
					return true
				}
				m.Activate()
				return true
			},
		},
	}
}
