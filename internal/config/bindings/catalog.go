package bindings

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/dshills/scm/internal/input/keymap"
)

var (
	// ErrUnknownAction is returned for bindings naming an unregistered action.
	ErrUnknownAction = errors.New("unknown action")

	// ErrDuplicateAction is returned when registering an action name twice.
	ErrDuplicateAction = errors.New("action already registered")
)

// MaxSuggestDistance is the largest edit distance Suggest accepts.
const MaxSuggestDistance = 3

// Action is a named handler that bindings can refer to.
type Action struct {
	Name        string
	Description string
	Fn          keymap.HandlerFunc
}

// Catalog holds the actions available to binding files.
type Catalog struct {
	mu      sync.RWMutex
	actions map[string]Action
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{actions: make(map[string]Action)}
}

// Register adds an action.
func (c *Catalog) Register(a Action) error {
	if a.Name == "" {
		return errors.New("action name is empty")
	}
	if a.Fn == nil {
		return fmt.Errorf("action %s: %w", a.Name, keymap.ErrNilHandler)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.actions[a.Name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateAction, a.Name)
	}
	c.actions[a.Name] = a
	return nil
}

// Lookup returns the named action.
func (c *Catalog) Lookup(name string) (Action, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	a, ok := c.actions[name]
	return a, ok
}

// Names returns all action names, sorted.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.actions))
	for name := range c.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Suggest returns the registered action closest to name, if one is within
// MaxSuggestDistance edits. Ties resolve alphabetically.
func (c *Catalog) Suggest(name string) (string, bool) {
	target := strings.ToLower(name)
	best := ""
	bestDist := MaxSuggestDistance + 1

	for _, candidate := range c.Names() {
		d := levenshtein.ComputeDistance(target, strings.ToLower(candidate))
		if d < bestDist {
			best, bestDist = candidate, d
		}
	}
	return best, best != ""
}
