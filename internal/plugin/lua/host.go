package lua

import (
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/scm/internal/input/key"
	"github.com/dshills/scm/internal/input/keymap"
	"github.com/dshills/scm/internal/input/layer"
	"github.com/dshills/scm/internal/input/shortcut"
	scmlog "github.com/dshills/scm/internal/log"
)

// ModuleName is the global table scripts use to reach the manager.
const ModuleName = "scm"

// Host runs one script and owns the shortcuts it registers.
//
// Every binding made by the script belongs to the host's context, so
// Close removes them all without touching other registrations.
type Host struct {
	name   string
	root   *shortcut.Root
	ctx    keymap.Context
	state  *State
	logger *slog.Logger

	mu       sync.Mutex
	managers map[string]*shortcut.Manager
	handlers map[*lua.LFunction]*keymap.Handler
	closed   bool
}

// NewHost creates a host for the script called name. The name is also
// used to derive the host's context.
func NewHost(root *shortcut.Root, name string, logger *slog.Logger, opts ...StateOption) *Host {
	if logger == nil {
		logger = scmlog.Discard()
	}
	h := &Host{
		name:     name,
		root:     root,
		ctx:      keymap.ContextFor("lua:" + name),
		logger:   logger.With("script", name),
		managers: make(map[string]*shortcut.Manager),
		handlers: make(map[*lua.LFunction]*keymap.Handler),
	}
	h.state = NewState(h.print, opts...)
	h.install()
	return h
}

// LoadFile creates a host named after the script file and runs it.
func LoadFile(root *shortcut.Root, path string, logger *slog.Logger, opts ...StateOption) (*Host, error) {
	h := NewHost(root, filepath.Base(path), logger, opts...)
	if err := h.state.DoFile(path); err != nil {
		_ = h.Close()
		return nil, err
	}
	h.logger.Debug("script loaded", "path", path, "layers", h.Layers())
	return h, nil
}

// Run executes a chunk of Lua code in the host.
func (h *Host) Run(code string) error {
	return h.state.DoString(code)
}

// Name returns the script name.
func (h *Host) Name() string {
	return h.name
}

// Context returns the context owning the script's bindings.
func (h *Host) Context() keymap.Context {
	return h.ctx
}

// Layers returns the names of the layers the script registered in.
func (h *Host) Layers() []string {
	h.mu.Lock()
	defer h.mu.Unlock()

	names := make([]string, 0, len(h.managers))
	for name := range h.managers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close removes every binding of the script and releases the Lua state.
func (h *Host) Close() error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return nil
	}
	h.closed = true
	managers := h.managers
	h.managers = make(map[string]*shortcut.Manager)
	h.handlers = make(map[*lua.LFunction]*keymap.Handler)
	h.mu.Unlock()

	for _, m := range managers {
		if err := m.Destroy(); err != nil {
			h.logger.Warn("failed to remove script bindings", "layer", m.Layer(), "error", err)
		}
	}
	return h.state.Close()
}

// manager returns the manager for the named layer, creating it on first
// use. An empty name selects the main layer.
func (h *Host) manager(name string) *shortcut.Manager {
	k := layer.Name(name)

	h.mu.Lock()
	defer h.mu.Unlock()

	if m, ok := h.managers[k.String()]; ok {
		return m
	}
	m := h.root.Create(h.ctx, k)
	h.managers[k.String()] = m
	return m
}

// handler returns the handler wrapping fn. The same function always maps
// to the same handler so scripts can remove it again.
func (h *Host) handler(fn *lua.LFunction) *keymap.Handler {
	h.mu.Lock()
	defer h.mu.Unlock()

	if hd, ok := h.handlers[fn]; ok {
		return hd
	}
	hd := keymap.NamedHandler("lua:"+h.name, func(sc string, modifier, rangeLow int) bool {
		ret, err := h.state.Call(fn, lua.LString(sc), lua.LNumber(modifier), lua.LNumber(rangeLow))
		if err != nil {
			h.logger.Error("lua handler failed", "shortcut", sc, "error", err)
			return false
		}
		return lua.LVAsBool(ret)
	})
	h.handlers[fn] = hd
	return hd
}

// lookup returns the handler already wrapping fn, if any.
func (h *Host) lookup(fn *lua.LFunction) (*keymap.Handler, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	hd, ok := h.handlers[fn]
	return hd, ok
}

func (h *Host) print(msg string) {
	h.logger.Info(msg)
}

// install sets up the scm module.
func (h *Host) install() {
	L := h.state.L
	mod := h.layerTable(L, "")
	L.SetFuncs(mod, map[string]lua.LGFunction{
		"layer":      h.luaLayer,
		"activate":   h.luaActivate,
		"deactivate": h.luaDeactivate,
		"active":     h.luaActive,
		"exists":     h.luaExists,
		"normalize":  h.luaNormalize,
	})
	L.SetGlobal(ModuleName, mod)
}

// layerTable builds the on/remove functions bound to one layer.
func (h *Host) layerTable(L *lua.LState, name string) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "name", lua.LString(layer.Name(name).String()))
	L.SetFuncs(tbl, map[string]lua.LGFunction{
		"on": func(L *lua.LState) int {
			return h.luaOn(L, name)
		},
		"remove": func(L *lua.LState) int {
			return h.luaRemove(L, name)
		},
	})
	return tbl
}

// scm.on(pattern, fn [, default])
func (h *Host) luaOn(L *lua.LState, name string) int {
	pattern := L.CheckString(1)
	fn := L.CheckFunction(2)
	isDefault := L.OptBool(3, false)

	m := h.manager(name)
	hd := h.handler(fn)
	var err error
	if isDefault {
		err = m.OnDefault(pattern, hd)
	} else {
		err = m.On(pattern, hd)
	}
	if err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// scm.remove([pattern [, fn]])
//
// Without a pattern the whole script context is cleared and fn is ignored.
// With a pattern, a function that was never registered removes nothing.
func (h *Host) luaRemove(L *lua.LState, name string) int {
	pattern := L.OptString(1, "")
	var hd *keymap.Handler
	if pattern != "" && L.GetTop() >= 2 && L.Get(2) != lua.LNil {
		fn := L.CheckFunction(2)
		var ok bool
		if hd, ok = h.lookup(fn); !ok {
			return 0
		}
	}

	if err := h.manager(name).Remove(pattern, hd); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// scm.layer(name) returns a table with on/remove bound to the layer.
func (h *Host) luaLayer(L *lua.LState) int {
	name := L.CheckString(1)
	tbl := h.layerTable(L, name)
	L.SetFuncs(tbl, map[string]lua.LGFunction{
		"activate": func(L *lua.LState) int {
			h.manager(name).Activate()
			return 0
		},
		"deactivate": func(L *lua.LState) int {
			if err := h.manager(name).Deactivate(); err != nil {
				L.RaiseError("%s", err.Error())
			}
			return 0
		},
		"is_active": func(L *lua.LState) int {
			L.Push(lua.LBool(h.manager(name).IsActive()))
			return 1
		},
	})
	L.Push(tbl)
	return 1
}

// scm.activate(layer)
func (h *Host) luaActivate(L *lua.LState) int {
	h.manager(L.OptString(1, "")).Activate()
	return 0
}

// scm.deactivate(layer)
func (h *Host) luaDeactivate(L *lua.LState) int {
	if err := h.manager(L.OptString(1, "")).Deactivate(); err != nil {
		L.RaiseError("%s", err.Error())
	}
	return 0
}

// scm.active() returns the name of the active layer.
func (h *Host) luaActive(L *lua.LState) int {
	L.Push(lua.LString(h.root.ActiveLayer()))
	return 1
}

// scm.exists(shortcut)
func (h *Host) luaExists(L *lua.LState) int {
	L.Push(lua.LBool(h.root.Static().Exists(L.CheckString(1))))
	return 1
}

// scm.normalize(shortcut)
func (h *Host) luaNormalize(L *lua.LState) int {
	L.Push(lua.LString(key.Normalize(L.CheckString(1))))
	return 1
}
