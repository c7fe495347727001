package key

// Event is the key-event record consumed from the host environment.
// KeyCode uses the browser keyCode numbering (65 for "A", 13 for Enter, ...).
type Event struct {
	Ctrl  bool
	Alt   bool
	Shift bool

	// KeyCode identifies the physical key.
	KeyCode int
}

// NewEvent creates an event for code with the given modifiers.
func NewEvent(code int, mods Modifier) Event {
	return Event{
		Ctrl:    mods.HasCtrl(),
		Alt:     mods.HasAlt(),
		Shift:   mods.HasShift(),
		KeyCode: code,
	}
}

// Modifiers returns the pressed modifiers as a bitmask.
func (e Event) Modifiers() Modifier {
	var m Modifier
	if e.Ctrl {
		m = m.With(ModCtrl)
	}
	if e.Alt {
		m = m.With(ModAlt)
	}
	if e.Shift {
		m = m.With(ModShift)
	}
	return m
}

// IsZero returns true if the event carries no key code.
func (e Event) IsZero() bool {
	return e.KeyCode <= 0
}

// String returns the canonical shortcut for the event.
func (e Event) String() string {
	return FromEvent(e)
}
