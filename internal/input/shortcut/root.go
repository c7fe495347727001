package shortcut

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/dshills/scm/internal/input/keymap"
	"github.com/dshills/scm/internal/input/layer"
	scmlog "github.com/dshills/scm/internal/log"
)

// Root owns the layers, the activation stack and the dispatch settings
// shared by every Manager created from it.
type Root struct {
	registry *layer.Registry
	stack    *layer.Stack
	logger   *slog.Logger
	debug    atomic.Bool
	static   *Manager

	events       atomic.Uint64
	handled      atomic.Uint64
	handlerCalls atomic.Uint64
}

// Option configures a Root.
type Option func(*Root)

// WithLogger sets the logger used for debug tracing.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Root) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithDebug enables dispatch tracing from the start.
func WithDebug(enabled bool) Option {
	return func(r *Root) {
		r.debug.Store(enabled)
	}
}

// New creates a root with an empty main layer.
func New(opts ...Option) *Root {
	registry := layer.NewRegistry()
	r := &Root{
		registry: registry,
		stack:    layer.NewStack(registry.Main()),
		logger:   scmlog.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.static = &Manager{
		root:   r,
		ctx:    keymap.DefaultContext,
		layer:  registry.Main(),
		static: true,
	}
	return r
}

// Static returns the non-rebindable manager bound to the default context
// and the main layer. Its Destroy clears every chain of the main layer.
func (r *Root) Static() *Manager {
	return r.static
}

// Create returns a manager bound to ctx and to the layer identified by
// the optional key. Without a key the main layer is used.
func (r *Root) Create(ctx keymap.Context, key ...layer.Key) *Manager {
	return &Manager{
		root:  r,
		ctx:   ctx,
		layer: r.resolve(key),
	}
}

func (r *Root) resolve(key []layer.Key) *layer.Layer {
	if len(key) == 0 {
		return r.registry.Main()
	}
	return r.registry.Resolve(key[0])
}

// ActiveLayer returns the name of the layer receiving events.
func (r *Root) ActiveLayer() string {
	return r.stack.Active().Name()
}

// ActiveStack returns the names of the activated layers, bottom first.
func (r *Root) ActiveStack() []string {
	return r.stack.Names()
}

// Layers returns the names of every layer referenced so far.
func (r *Root) Layers() []string {
	return r.registry.Names()
}

// Shortcuts returns the registered shortcuts of the named layer.
func (r *Root) Shortcuts(layerName string) []string {
	l, ok := r.registry.Lookup(layerName)
	if !ok {
		return nil
	}
	return l.Store().Shortcuts()
}

// Bindings returns the chain registered for shortcut in the named layer,
// in storage order.
func (r *Root) Bindings(layerName, shortcut string) []keymap.Binding {
	l, ok := r.registry.Lookup(layerName)
	if !ok {
		return nil
	}
	return l.Store().Get(shortcut)
}

// OnLayerChange registers cb for active layer changes.
// The returned function unregisters it.
func (r *Root) OnLayerChange(cb layer.ChangeCallback) func() {
	return r.stack.OnChange(cb)
}

// Reset removes every binding in every layer and clears the activation
// stack.
func (r *Root) Reset() {
	for _, name := range r.registry.Names() {
		if l, ok := r.registry.Lookup(name); ok {
			_, _ = l.Store().Remove(keymap.DefaultContext, "", nil)
		}
	}
	r.stack.Activate(r.registry.Main())
}

// SetDebug toggles dispatch tracing.
func (r *Root) SetDebug(enabled bool) {
	r.debug.Store(enabled)
	r.logger.Info("shortcut debug mode changed", "enabled", enabled)
}

// Debug reports whether dispatch tracing is on.
func (r *Root) Debug() bool {
	return r.debug.Load()
}

// Stats holds dispatch counters.
type Stats struct {
	Events       uint64
	Handled      uint64
	Unhandled    uint64
	HandlerCalls uint64
}

// Stats returns a snapshot of the dispatch counters.
func (r *Root) Stats() Stats {
	handled := r.handled.Load()
	events := r.events.Load()
	return Stats{
		Events:       events,
		Handled:      handled,
		Unhandled:    events - handled,
		HandlerCalls: r.handlerCalls.Load(),
	}
}

func (r *Root) trace(msg string, args ...any) {
	if !r.debug.Load() {
		return
	}
	r.logger.Log(context.Background(), scmlog.LevelTrace, msg, args...)
}
