package shortcut

import (
	"github.com/dshills/scm/internal/input/key"
	"github.com/dshills/scm/internal/input/keymap"
	"github.com/dshills/scm/internal/input/layer"
)

// Manager is a handle bound to a context and a layer.
type Manager struct {
	root   *Root
	ctx    keymap.Context
	layer  *layer.Layer
	static bool
}

// In returns a manager bound to ctx and the optional layer key, sharing
// the receiver's root. It fails on the static manager.
func (m *Manager) In(ctx keymap.Context, key ...layer.Key) (*Manager, error) {
	if m.static {
		return nil, ErrStaticRebind
	}
	return m.root.Create(ctx, key...), nil
}

// Create is shorthand for Root.Create on the manager's root.
func (m *Manager) Create(ctx keymap.Context, key ...layer.Key) *Manager {
	return m.root.Create(ctx, key...)
}

// Root returns the root the manager belongs to.
func (m *Manager) Root() *Root {
	return m.root
}

// Context returns the bound context.
func (m *Manager) Context() keymap.Context {
	return m.ctx
}

// Layer returns the name of the bound layer.
func (m *Manager) Layer() string {
	return m.layer.Name()
}

// IsStatic reports whether the manager can not be rebound.
func (m *Manager) IsStatic() bool {
	return m.static
}

// On registers h for every shortcut the pattern denotes.
func (m *Manager) On(pattern string, h *keymap.Handler) error {
	return m.save(pattern, h, false)
}

// OnDefault registers h as the default handler of every shortcut the
// pattern denotes. A shortcut holds at most one default handler per layer.
func (m *Manager) OnDefault(pattern string, h *keymap.Handler) error {
	return m.save(pattern, h, true)
}

// OnFunc wraps fn in a handler, registers it and returns the handler for
// later removal.
func (m *Manager) OnFunc(pattern string, fn keymap.HandlerFunc) (*keymap.Handler, error) {
	h := keymap.NewHandler(fn)
	if err := m.save(pattern, h, false); err != nil {
		return nil, err
	}
	return h, nil
}

func (m *Manager) save(pattern string, h *keymap.Handler, isDefault bool) error {
	normalized := key.NormalizePattern(pattern)
	if err := m.layer.Store().Save(normalized, m.ctx, h, isDefault); err != nil {
		return err
	}
	m.root.trace("register shortcut",
		"pattern", normalized,
		"layer", m.layer.Name(),
		"context", m.ctx.String(),
		"handler", h.Name(),
		"default", isDefault,
	)
	return nil
}

// Remove removes bindings of the manager's context from the bound layer.
//
// With a pattern and a handler only that handler is removed from the
// pattern's shortcuts. With a pattern only, every binding of the context
// on those shortcuts is removed. Without a pattern every binding of the
// context is removed and h is ignored. The static manager removes whole
// chains.
func (m *Manager) Remove(pattern string, h *keymap.Handler) error {
	normalized := key.NormalizePattern(pattern)
	n, err := m.layer.Store().Remove(m.ctx, normalized, h)
	if err != nil {
		return err
	}
	m.root.trace("remove shortcut",
		"pattern", normalized,
		"layer", m.layer.Name(),
		"context", m.ctx.String(),
		"removed", n,
	)
	return nil
}

// Destroy removes every binding of the manager's context from the bound
// layer. Activation stack membership is left unchanged.
func (m *Manager) Destroy() error {
	return m.Remove("", nil)
}

// Activate makes the bound layer the active one. Activating the main layer
// clears the activation stack.
func (m *Manager) Activate() {
	m.root.stack.Activate(m.layer)
	m.root.trace("activate layer", "layer", m.layer.Name(), "active", m.root.ActiveLayer())
}

// Deactivate removes the bound layer from the activation stack.
func (m *Manager) Deactivate() error {
	if err := m.root.stack.Deactivate(m.layer); err != nil {
		return err
	}
	m.root.trace("deactivate layer", "layer", m.layer.Name(), "active", m.root.ActiveLayer())
	return nil
}

// IsActive reports whether the bound layer receives events.
func (m *Manager) IsActive() bool {
	return m.root.stack.Active() == m.layer
}

// Event dispatches ev to the active layer and reports whether a handler
// handled it.
func (m *Manager) Event(ev key.Event) bool {
	return m.root.dispatch(key.FromEvent(ev))
}

// Fire dispatches an already written shortcut as if its key was pressed.
func (m *Manager) Fire(shortcut string) bool {
	return m.root.dispatch(key.Normalize(shortcut))
}

// Exists reports whether shortcut has handlers in the active layer.
func (m *Manager) Exists(shortcut string) bool {
	return m.root.exists(key.Normalize(shortcut))
}

// ExistsEvent reports whether the shortcut of ev has handlers in the
// active layer.
func (m *Manager) ExistsEvent(ev key.Event) bool {
	return m.root.exists(key.FromEvent(ev))
}

// Normalize returns the canonical form of shortcut.
func (m *Manager) Normalize(shortcut string) string {
	return key.Normalize(shortcut)
}

// NormalizeEvent returns the canonical shortcut of ev.
func (m *Manager) NormalizeEvent(ev key.Event) string {
	return key.FromEvent(ev)
}

// DebugMode toggles dispatch tracing for the whole root.
func (m *Manager) DebugMode(enabled bool) {
	m.root.SetDebug(enabled)
}
