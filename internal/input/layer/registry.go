package layer

import (
	"sort"
	"sync"

	"github.com/dshills/scm/internal/input/keymap"
)

// Layer is a named shortcut store.
type Layer struct {
	name  string
	main  bool
	store *keymap.Store
}

func newLayer(name string, main bool) *Layer {
	return &Layer{
		name:  name,
		main:  main,
		store: keymap.NewStore(),
	}
}

// Name returns the layer name.
func (l *Layer) Name() string {
	return l.name
}

// IsMain reports whether this is the main layer.
func (l *Layer) IsMain() bool {
	return l.main
}

// Store returns the layer's shortcut store.
func (l *Layer) Store() *keymap.Store {
	return l.store
}

// Registry holds every layer referenced so far.
// The main layer is created with the registry; others on first reference.
type Registry struct {
	mu     sync.RWMutex
	main   *Layer
	layers map[string]*Layer
}

// NewRegistry creates a registry containing only the main layer.
func NewRegistry() *Registry {
	main := newLayer(MainName, true)
	return &Registry{
		main:   main,
		layers: map[string]*Layer{MainName: main},
	}
}

// Main returns the main layer.
func (r *Registry) Main() *Layer {
	return r.main
}

// Resolve returns the layer for key, creating it if needed.
func (r *Registry) Resolve(key Key) *Layer {
	if key.IsMain() {
		return r.main
	}
	name := key.String()

	r.mu.RLock()
	l, ok := r.layers[name]
	r.mu.RUnlock()
	if ok {
		return l
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if l, ok := r.layers[name]; ok {
		return l
	}
	l = newLayer(name, false)
	r.layers[name] = l
	return l
}

// Lookup returns the layer with the given name without creating it.
func (r *Registry) Lookup(name string) (*Layer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	l, ok := r.layers[name]
	return l, ok
}

// Names returns the names of all known layers, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.layers))
	for name := range r.layers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of known layers, including main.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.layers)
}
