package keymap

import (
	"fmt"
	"sort"
	"sync"
)

// Store maps canonical shortcuts to handler chains.
// Chains that become empty are deleted, so a present entry is never empty.
type Store struct {
	mu sync.RWMutex

	// chains holds the handler chain per canonical shortcut.
	chains map[string]*Chain
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		chains: make(map[string]*Chain),
	}
}

// Save registers handler for every shortcut the pattern expands to.
//
// If isDefault is set and one of the shortcuts already has a default handler,
// Save returns ErrDuplicateDefault naming that shortcut and registers nothing.
func (s *Store) Save(pattern string, ctx Context, handler *Handler, isDefault bool) error {
	if handler == nil {
		return ErrNilHandler
	}

	expansions, err := Expand(pattern)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// Validate the whole pattern first so a failure leaves the store untouched.
	if isDefault {
		pending := make(map[string]bool, len(expansions))
		for _, e := range expansions {
			chain := s.chains[e.Shortcut]
			if pending[e.Shortcut] || (chain != nil && chain.HasDefault()) {
				return fmt.Errorf("%w for shortcut %s", ErrDuplicateDefault, e.Shortcut)
			}
			pending[e.Shortcut] = true
		}
	}

	for _, e := range expansions {
		chain, ok := s.chains[e.Shortcut]
		if !ok {
			chain = &Chain{}
			s.chains[e.Shortcut] = chain
		}
		// Cannot fail: defaults were checked above.
		_ = chain.Add(Binding{
			Context:  ctx,
			Handler:  handler,
			Default:  isDefault,
			Modifier: e.Modifier,
			RangeLow: e.RangeLow,
		})
	}
	return nil
}

// Get returns a copy of the chain registered for shortcut, in stored order.
// Returns nil if nothing is registered. Get never creates an entry.
func (s *Store) Get(shortcut string) []Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain, ok := s.chains[shortcut]
	if !ok {
		return nil
	}
	return chain.Bindings()
}

// DispatchOrder returns a copy of the chain for shortcut in dispatch order.
// Returns nil if nothing is registered.
func (s *Store) DispatchOrder(shortcut string) []Binding {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain, ok := s.chains[shortcut]
	if !ok {
		return nil
	}
	return chain.DispatchOrder()
}

// Exists returns true if a non-empty chain is registered for shortcut.
func (s *Store) Exists(shortcut string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	chain, ok := s.chains[shortcut]
	return ok && chain.Len() > 0
}

// Remove deletes bindings owned by ctx.
//
//   - pattern and handler set: bindings of ctx with that handler in the
//     pattern's chains
//   - pattern set, handler nil: all bindings of ctx in the pattern's chains
//   - pattern empty: all bindings of ctx in every chain; handler is ignored
//
// Passing DefaultContext clears the affected chains entirely.
// Returns the number of bindings removed.
func (s *Store) Remove(ctx Context, pattern string, handler *Handler) (int, error) {
	var shortcuts []string
	if pattern != "" {
		var err error
		if shortcuts, err = Shortcuts(pattern); err != nil {
			return 0, err
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if shortcuts == nil {
		shortcuts = make([]string, 0, len(s.chains))
		for sc := range s.chains {
			shortcuts = append(shortcuts, sc)
		}
	}

	if pattern == "" {
		handler = nil
	}
	match := func(b Binding) bool {
		if !b.Context.Equal(ctx) {
			return false
		}
		return handler == nil || b.Handler == handler
	}

	removed := 0
	for _, sc := range shortcuts {
		chain, ok := s.chains[sc]
		if !ok {
			continue
		}
		if ctx.IsDefault() {
			removed += chain.clear()
		} else {
			removed += chain.removeFunc(match)
		}
		if chain.Len() == 0 {
			delete(s.chains, sc)
		}
	}
	return removed, nil
}

// Shortcuts returns all registered shortcuts, sorted.
func (s *Store) Shortcuts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, 0, len(s.chains))
	for sc := range s.chains {
		out = append(out, sc)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of registered shortcuts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.chains)
}

// Contexts returns the distinct contexts that own at least one binding.
func (s *Store) Contexts() []Context {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[Context]bool)
	var out []Context
	for _, chain := range s.chains {
		for _, b := range chain.bindings {
			if !seen[b.Context] {
				seen[b.Context] = true
				out = append(out, b.Context)
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].ID().String() < out[j].ID().String()
	})
	return out
}
