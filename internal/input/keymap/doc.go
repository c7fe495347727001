// Package keymap stores shortcut handlers for the shortcut manager.
//
// A Store maps canonical shortcuts to handler chains. Each Binding in a chain
// records the Context it was registered for, the Handler to call, whether it
// is the chain's default handler, and the range index it was registered with.
//
// # Chain Order
//
// Bindings are appended in registration order, except the default binding,
// which always sits at the head of the chain. Dispatch walks the chain from
// tail to head:
//
//	registration:  on(h1) onDefault(h2) on(h3)
//	chain:         [h2(default) h1 h3]
//	dispatch:      h3, h1, h2
//
// so the most recent registration runs first and the default runs last.
//
// # Patterns
//
// Save and Remove accept patterns that expand to several shortcuts:
//
//	"ctrl+b, ctrl+c"   alternatives, each bound with modifier -1
//	"ctrl+[0..3]"      one shortcut per integer, bound with modifier i
//
// Only one range may appear in a single alternative.
package keymap
