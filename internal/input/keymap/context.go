package keymap

import (
	"github.com/google/uuid"
)

// Context identifies the owner of a set of bindings.
// Contexts compare by identity: two contexts created with the same name are
// still distinct. The zero Context is DefaultContext.
type Context struct {
	id   uuid.UUID
	name string
}

// DefaultContext is the administrative context. Removing with it clears whole
// chains regardless of which context registered them.
var DefaultContext = Context{name: "default"}

// NewContext creates a new unique context.
func NewContext(name string) Context {
	return Context{id: uuid.New(), name: name}
}

// ContextFor returns a stable context derived from name.
// Calling it twice with the same name yields equal contexts, which lets a
// reloaded source find the bindings it registered earlier.
func ContextFor(name string) Context {
	return Context{id: uuid.NewSHA1(uuid.NameSpaceURL, []byte("scm:"+name)), name: name}
}

// ID returns the context's identity.
func (c Context) ID() uuid.UUID {
	return c.id
}

// Name returns the display name given at creation.
func (c Context) Name() string {
	if c.IsDefault() {
		return DefaultContext.name
	}
	return c.name
}

// IsDefault returns true for DefaultContext.
func (c Context) IsDefault() bool {
	return c.id == uuid.Nil
}

// Equal reports whether both values denote the same context.
func (c Context) Equal(other Context) bool {
	return c.id == other.id
}

// String returns "name(id)" for logging.
func (c Context) String() string {
	return c.Name() + "(" + c.id.String() + ")"
}
