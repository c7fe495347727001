package keymap

// HandlerFunc handles a dispatched shortcut.
//
// shortcut is the canonical shortcut that fired. modifier is the range index
// the binding was registered with and rangeLow the low bound of that range;
// both are NoModifier for bindings made without a range.
// Returning true stops dispatch.
type HandlerFunc func(shortcut string, modifier, rangeLow int) bool

// Handler wraps a HandlerFunc with a stable identity.
// Handlers are compared by pointer, so keep the *Handler returned by
// NewHandler to remove the registration later.
type Handler struct {
	name string
	fn   HandlerFunc
}

// NewHandler creates a handler for fn.
func NewHandler(fn HandlerFunc) *Handler {
	return &Handler{fn: fn}
}

// NamedHandler creates a handler with a name used in debug traces.
func NamedHandler(name string, fn HandlerFunc) *Handler {
	return &Handler{name: name, fn: fn}
}

// Name returns the handler name, or "anonymous".
func (h *Handler) Name() string {
	if h == nil || h.name == "" {
		return "anonymous"
	}
	return h.name
}

// Call invokes the handler. A nil handler reports false.
func (h *Handler) Call(shortcut string, modifier, rangeLow int) bool {
	if h == nil || h.fn == nil {
		return false
	}
	return h.fn(shortcut, modifier, rangeLow)
}
