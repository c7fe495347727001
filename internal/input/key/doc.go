// Package key normalizes keyboard input for the shortcut manager.
//
// Two inputs are accepted and both are reduced to the same canonical string:
//
//   - Event: a raw key-event record (modifier flags and a key code) as reported
//     by the host environment
//   - Shortcut strings: free-form text such as "Alt+Shift+Ctrl+B"
//
// # Canonical Form
//
// A canonical shortcut is zero or more modifier tokens from the fixed ordered
// set ctrl, alt, shift (each at most once, in that order) followed by the key
// token, joined by "+":
//
//	ctrl+b
//	ctrl+alt+shift+space
//	+
//	ctrl++
//
// The literal "+" is the plus key and is never treated as a separator when it
// stands alone or trails a "+".
//
// Equivalent raw forms always produce identical canonical strings. Normalize
// is idempotent.
package key
