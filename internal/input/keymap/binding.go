package keymap

// NoModifier is the modifier and range bound of bindings made without a range.
const NoModifier = -1

// Binding is one registration in a chain.
type Binding struct {
	// Context owns the binding.
	Context Context

	// Handler is invoked on dispatch.
	Handler *Handler

	// Default marks the chain's fallback handler.
	Default bool

	// Modifier is the range index this binding was registered with.
	Modifier int

	// RangeLow is the low bound of the registration range.
	RangeLow int
}

// Chain is the ordered list of bindings for one shortcut.
//
// Invariant: at most one binding is the default, and when present it is the
// first element. Dispatch order is the reverse of the stored order.
type Chain struct {
	bindings []Binding
}

// Len returns the number of bindings.
func (c *Chain) Len() int {
	return len(c.bindings)
}

// HasDefault returns true if the chain holds a default binding.
func (c *Chain) HasDefault() bool {
	return len(c.bindings) > 0 && c.bindings[0].Default
}

// Add inserts b. Default bindings go to the head, others to the tail.
// Returns ErrDuplicateDefault without modifying the chain if b is a default
// and the chain already has one.
func (c *Chain) Add(b Binding) error {
	if !b.Default {
		c.bindings = append(c.bindings, b)
		return nil
	}
	if c.HasDefault() {
		return ErrDuplicateDefault
	}
	c.bindings = append([]Binding{b}, c.bindings...)
	return nil
}

// Bindings returns a copy of the bindings in stored order.
func (c *Chain) Bindings() []Binding {
	out := make([]Binding, len(c.bindings))
	copy(out, c.bindings)
	return out
}

// DispatchOrder returns a copy of the bindings in the order they are tried:
// most recent registration first, default last.
func (c *Chain) DispatchOrder() []Binding {
	out := make([]Binding, len(c.bindings))
	for i, b := range c.bindings {
		out[len(c.bindings)-1-i] = b
	}
	return out
}

// removeFunc drops every binding for which match returns true.
// Returns the number of bindings removed.
func (c *Chain) removeFunc(match func(Binding) bool) int {
	kept := c.bindings[:0]
	for _, b := range c.bindings {
		if !match(b) {
			kept = append(kept, b)
		}
	}
	removed := len(c.bindings) - len(kept)
	// Clear the tail so dropped handlers can be collected.
	for i := len(kept); i < len(c.bindings); i++ {
		c.bindings[i] = Binding{}
	}
	c.bindings = kept
	return removed
}

// clear drops every binding.
func (c *Chain) clear() int {
	n := len(c.bindings)
	c.bindings = nil
	return n
}
