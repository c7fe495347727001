// Package layer provides layer identities, the lazily populated layer
// registry and the activation stack that selects which layer receives
// dispatched key events.
//
// A layer is a named keymap.Store. The main layer always exists and is
// never a member of the activation stack; when the stack is empty the
// main layer is active.
//
// Layers are identified by a Key, which can be built from a literal name,
// from a structural path computed from a node's ancestry, or the Main
// sentinel:
//
//	reg := layer.NewRegistry()
//	modal := reg.Resolve(layer.Name("modal"))
//	panel := reg.Resolve(layer.FromNode(node))
//
// Layers are never torn down once created.
package layer
