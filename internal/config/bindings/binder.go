package bindings

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dshills/scm/internal/input/key"
	"github.com/dshills/scm/internal/input/keymap"
	"github.com/dshills/scm/internal/input/shortcut"
	scmlog "github.com/dshills/scm/internal/log"
)

// ContextFor returns the context owning the bindings of the file at path.
func ContextFor(path string) keymap.Context {
	return keymap.ContextFor("bindings:" + path)
}

// Summary describes an applied file.
type Summary struct {
	Path      string
	Layers    int
	Bindings  int
	Shortcuts int
}

type applied struct {
	file    *File
	ctx     keymap.Context
	layers  []string
	summary Summary
}

// Binder applies binding files to a root and keeps track of them so they
// can be reloaded or unloaded.
type Binder struct {
	root    *shortcut.Root
	catalog *Catalog
	logger  *slog.Logger

	mu    sync.Mutex
	files map[string]*applied
}

// NewBinder creates a binder resolving actions through catalog.
func NewBinder(root *shortcut.Root, catalog *Catalog, logger *slog.Logger) *Binder {
	if logger == nil {
		logger = scmlog.Discard()
	}
	return &Binder{
		root:    root,
		catalog: catalog,
		logger:  logger,
		files:   make(map[string]*applied),
	}
}

// Apply validates f and registers its bindings, replacing any bindings
// previously applied from the same path. When registration fails the
// previous bindings are restored.
func (b *Binder) Apply(f *File) (Summary, error) {
	if err := f.Validate(b.catalog); err != nil {
		return Summary{}, err
	}
	path := canonicalPath(f.Path)

	b.mu.Lock()
	defer b.mu.Unlock()

	prev := b.files[path]
	if prev != nil {
		b.unregister(prev)
		delete(b.files, path)
	}

	next, err := b.register(path, f)
	if err != nil {
		if prev != nil {
			if restored, rerr := b.register(path, prev.file); rerr == nil {
				b.files[path] = restored
			} else {
				err = errors.Join(err, fmt.Errorf("restoring previous bindings: %w", rerr))
			}
		}
		return Summary{}, err
	}

	b.files[path] = next
	b.logger.Info("bindings applied",
		"path", path,
		"layers", next.summary.Layers,
		"bindings", next.summary.Bindings,
		"shortcuts", next.summary.Shortcuts,
	)
	return next.summary, nil
}

// Reload reads path again and applies it. On any error the bindings
// applied before stay in place.
func (b *Binder) Reload(path string) (Summary, error) {
	f, err := Load(path)
	if err != nil {
		return Summary{}, err
	}
	return b.Apply(f)
}

// Unload removes every binding applied from path.
func (b *Binder) Unload(path string) error {
	path = canonicalPath(path)

	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.files[path]
	if !ok {
		return fmt.Errorf("bindings %s are not loaded", path)
	}
	b.unregister(a)
	delete(b.files, path)
	b.logger.Info("bindings unloaded", "path", path)
	return nil
}

// Files returns the paths of applied files, sorted.
func (b *Binder) Files() []string {
	b.mu.Lock()
	defer b.mu.Unlock()

	paths := make([]string, 0, len(b.files))
	for p := range b.files {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// Summary returns the summary of the file applied from path.
func (b *Binder) Summary(path string) (Summary, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	a, ok := b.files[canonicalPath(path)]
	if !ok {
		return Summary{}, false
	}
	return a.summary, true
}

func (b *Binder) register(path string, f *File) (*applied, error) {
	a := &applied{
		file: f,
		ctx:  ContextFor(path),
		summary: Summary{
			Path:   path,
			Layers: len(f.LayerNames()),
		},
	}
	touched := make(map[string]bool)

	for _, l := range f.Layers {
		m := b.root.Create(a.ctx, l.Key())
		if !touched[m.Layer()] {
			touched[m.Layer()] = true
			a.layers = append(a.layers, m.Layer())
		}

		for i, binding := range l.Bindings {
			action, ok := b.catalog.Lookup(binding.Action)
			if !ok {
				b.unregister(a)
				return nil, fmt.Errorf("layer %s binding %d: %w %q", m.Layer(), i+1, ErrUnknownAction, binding.Action)
			}

			h := keymap.NamedHandler(action.Name, action.Fn)
			var err error
			if binding.Default {
				err = m.OnDefault(binding.Keys, h)
			} else {
				err = m.On(binding.Keys, h)
			}
			if err != nil {
				b.unregister(a)
				return nil, fmt.Errorf("layer %s binding %d (%s): %w", m.Layer(), i+1, binding.Keys, err)
			}

			shortcuts, _ := keymap.Shortcuts(key.NormalizePattern(binding.Keys))
			a.summary.Bindings++
			a.summary.Shortcuts += len(shortcuts)
		}
	}
	return a, nil
}

func (b *Binder) unregister(a *applied) {
	for _, name := range a.layers {
		m := b.root.Create(a.ctx, layerKey(name))
		if err := m.Destroy(); err != nil {
			b.logger.Warn("removing bindings", "layer", name, "error", err)
		}
	}
}

func canonicalPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
