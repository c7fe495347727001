// Package app wires the shortcut manager to binding files, Lua scripts,
// live reload and an interactive terminal host.
package app

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dshills/scm/internal/config"
	"github.com/dshills/scm/internal/config/bindings"
	"github.com/dshills/scm/internal/config/watcher"
	"github.com/dshills/scm/internal/input/key"
	"github.com/dshills/scm/internal/input/keymap"
	"github.com/dshills/scm/internal/input/layer"
	"github.com/dshills/scm/internal/input/shortcut"
	scmlog "github.com/dshills/scm/internal/log"
	plua "github.com/dshills/scm/internal/plugin/lua"
)

// HistorySize is the number of dispatched shortcuts kept for display.
const HistorySize = 10

// appContext owns the registrations made by the application itself.
var appContext = keymap.ContextFor("app")

// Options configures the application.
type Options struct {
	// Bindings are the binding files to apply.
	Bindings []string

	// Scripts are Lua scripts registering additional handlers.
	Scripts []string

	// Watch reloads binding files when they change on disk.
	Watch bool

	// Debounce delays reloads after a change.
	Debounce time.Duration

	// Layer is activated after everything is loaded.
	Layer string

	// Debug enables dispatch tracing.
	Debug bool

	// ScriptTimeout bounds every script run and Lua handler call.
	ScriptTimeout time.Duration

	// Logger receives application logs. Nil discards them.
	Logger *slog.Logger
}

// OptionsFromConfig builds options from the parsed command line.
func OptionsFromConfig(g config.Globals, run config.RunConfig, logger *slog.Logger) Options {
	return Options{
		Bindings: run.Bindings,
		Scripts:  run.Script,
		Watch:    run.Watch,
		Debounce: run.Debounce,
		Layer:    run.Layer,
		Debug:    g.Debug,
		Logger:   logger,
	}
}

// Entry records one dispatched shortcut.
type Entry struct {
	Shortcut string
	Layer    string
	Handled  bool
	Time     time.Time
}

// Application owns the shortcut root and everything feeding it.
type Application struct {
	mu sync.RWMutex

	root    *shortcut.Root
	catalog *bindings.Catalog
	binder  *bindings.Binder
	watcher *watcher.Watcher
	scripts []*plua.Host
	logger  *slog.Logger

	status  string
	history []Entry

	running   atomic.Bool
	started   chan struct{}
	startOnce sync.Once
	quit      chan struct{}
	quitOnce  sync.Once
	stop      context.CancelFunc

	opts Options
}

// New creates an application and loads its bindings and scripts.
func New(opts Options) (*Application, error) {
	if len(opts.Bindings) == 0 && len(opts.Scripts) == 0 {
		return nil, ErrNoBindings
	}
	if opts.Logger == nil {
		opts.Logger = scmlog.Discard()
	}

	app := &Application{
		opts:    opts,
		logger:  opts.Logger,
		started: make(chan struct{}),
		quit:    make(chan struct{}),
	}
	if err := app.bootstrap(); err != nil {
		app.Close()
		return nil, err
	}
	return app, nil
}

// bootstrap initializes all components in dependency order.
func (app *Application) bootstrap() error {
	// 1. Shortcut root
	app.root = shortcut.New(
		shortcut.WithLogger(app.logger),
		shortcut.WithDebug(app.opts.Debug),
	)
	app.root.OnLayerChange(func(from, to *layer.Layer) {
		app.logger.Debug("active layer changed", "from", from.Name(), "to", to.Name())
	})

	// 2. Action catalog
	app.catalog = bindings.NewCatalog()
	if err := app.registerBuiltins(); err != nil {
		return &InitError{Component: "actions", Err: err}
	}

	// 3. Binding files
	app.binder = bindings.NewBinder(app.root, app.catalog, app.logger)
	for _, path := range app.opts.Bindings {
		if _, err := app.loadBindings(path); err != nil {
			return &InitError{Component: "bindings", Err: err}
		}
	}

	// 4. Scripts
	var scriptOpts []plua.StateOption
	if app.opts.ScriptTimeout > 0 {
		scriptOpts = append(scriptOpts, plua.WithExecutionTimeout(app.opts.ScriptTimeout))
	}
	for _, path := range app.opts.Scripts {
		h, err := plua.LoadFile(app.root, path, app.logger, scriptOpts...)
		if err != nil {
			return &InitError{Component: "script", Err: NewOperationError("load", path, err)}
		}
		app.scripts = append(app.scripts, h)
	}

	// 5. Initial layer
	if app.opts.Layer != "" {
		app.root.Create(appContext, layer.Name(app.opts.Layer)).Activate()
	}

	// 6. Live reload
	if app.opts.Watch && len(app.opts.Bindings) > 0 {
		if err := app.startWatcher(); err != nil {
			return &InitError{Component: "watcher", Err: err}
		}
	}

	app.logger.Info("application ready",
		"bindings", len(app.opts.Bindings),
		"scripts", len(app.scripts),
		"layers", len(app.root.Layers()),
		"watch", app.watcher != nil,
	)
	return nil
}

func (app *Application) loadBindings(path string) (bindings.Summary, error) {
	f, err := bindings.Load(path)
	if err != nil {
		return bindings.Summary{}, err
	}
	if err := app.registerLayerActions(f.LayerNames()); err != nil {
		return bindings.Summary{}, err
	}
	return app.binder.Apply(f)
}

func (app *Application) startWatcher() error {
	w, err := watcher.New(
		watcher.WithDebounce(app.opts.Debounce),
		watcher.WithErrorHandler(func(err error) {
			app.logger.Warn("watcher error", "error", err)
		}),
	)
	if err != nil {
		return err
	}
	for _, path := range app.opts.Bindings {
		if err := w.Watch(path); err != nil {
			_ = w.Close()
			return NewOperationError("watch", path, err)
		}
	}
	w.OnChange(app.onFileChange)

	ctx, cancel := context.WithCancel(context.Background())
	app.watcher = w
	app.stop = cancel
	go func() {
		if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			app.logger.Error("watcher stopped", "error", err)
		}
	}()
	return nil
}

func (app *Application) onFileChange(ev watcher.Event) {
	switch ev.Op {
	case watcher.OpRemove, watcher.OpRename:
		app.logger.Warn("binding file removed, keeping current bindings", "path", ev.Path)
		return
	}
	if err := app.Reload(ev.Path); err != nil {
		app.logger.Error("reload failed", "path", ev.Path, "error", err)
		app.SetStatus("reload failed: " + filepath.Base(ev.Path))
		return
	}
	app.SetStatus("reloaded " + filepath.Base(ev.Path))
}

// Reload reads the binding file at path again. The bindings applied
// before stay in place when the file is invalid.
func (app *Application) Reload(path string) error {
	if _, err := app.loadBindings(path); err != nil {
		return NewOperationError("reload", path, err)
	}
	return nil
}

// ReloadAll reloads every binding file.
func (app *Application) ReloadAll() error {
	var errs []error
	for _, path := range app.binder.Files() {
		errs = append(errs, app.Reload(path))
	}
	return errors.Join(errs...)
}

// HandleKey dispatches ev and records the outcome.
func (app *Application) HandleKey(ev key.Event) bool {
	sc := key.FromEvent(ev)
	if sc == "" {
		return false
	}
	active := app.root.ActiveLayer()
	handled := app.root.Static().Event(ev)

	app.mu.Lock()
	app.history = append(app.history, Entry{
		Shortcut: sc,
		Layer:    active,
		Handled:  handled,
		Time:     time.Now(),
	})
	if len(app.history) > HistorySize {
		app.history = slices.Delete(app.history, 0, len(app.history)-HistorySize)
	}
	app.mu.Unlock()
	return handled
}

// History returns the recently dispatched shortcuts, oldest first.
func (app *Application) History() []Entry {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return slices.Clone(app.history)
}

// SetStatus sets the status line.
func (app *Application) SetStatus(msg string) {
	app.mu.Lock()
	app.status = msg
	app.mu.Unlock()
}

// Status returns the status line.
func (app *Application) Status() string {
	app.mu.RLock()
	defer app.mu.RUnlock()
	return app.status
}

// Quit asks the running host to exit.
func (app *Application) Quit() {
	app.quitOnce.Do(func() {
		close(app.quit)
	})
}

// QuitRequested reports whether Quit was called.
func (app *Application) QuitRequested() bool {
	select {
	case <-app.quit:
		return true
	default:
		return false
	}
}

// Started is closed once a host has initialized its screen.
func (app *Application) Started() <-chan struct{} {
	return app.started
}

// IsRunning returns true if a host is running.
func (app *Application) IsRunning() bool {
	return app.running.Load()
}

// Root returns the shortcut root.
func (app *Application) Root() *shortcut.Root {
	return app.root
}

// Catalog returns the action catalog.
func (app *Application) Catalog() *bindings.Catalog {
	return app.catalog
}

// Binder returns the binder holding the applied files.
func (app *Application) Binder() *bindings.Binder {
	return app.binder
}

// Scripts returns the loaded script names.
func (app *Application) Scripts() []string {
	names := make([]string, 0, len(app.scripts))
	for _, h := range app.scripts {
		names = append(names, h.Name())
	}
	return names
}

// Close stops the watcher and unloads scripts. Bindings stay applied.
func (app *Application) Close() {
	if app.stop != nil {
		app.stop()
		app.stop = nil
	}
	if app.watcher != nil {
		if err := app.watcher.Close(); err != nil {
			app.logger.Warn("closing watcher", "error", err)
		}
		app.watcher = nil
	}
	for _, h := range app.scripts {
		if err := h.Close(); err != nil {
			app.logger.Warn("closing script", "script", h.Name(), "error", err)
		}
	}
	app.scripts = nil
}
