package key

import "strings"

// Modifier represents keyboard modifier keys.
type Modifier uint8

const (
	// ModNone indicates no modifiers.
	ModNone Modifier = 0

	// ModCtrl indicates the Control key.
	ModCtrl Modifier = 1 << iota

	// ModAlt indicates the Alt key (Option on macOS).
	ModAlt

	// ModShift indicates the Shift key.
	ModShift
)

// Modifier tokens as they appear in canonical shortcuts.
const (
	TokenCtrl  = "ctrl"
	TokenAlt   = "alt"
	TokenShift = "shift"
)

// modifierOrder is the fixed position of each modifier token in a canonical shortcut.
var modifierOrder = map[string]int{
	TokenCtrl:  0,
	TokenAlt:   1,
	TokenShift: 2,
}

// Has returns true if m contains the specified modifier.
func (m Modifier) Has(mod Modifier) bool {
	return m&mod != 0
}

// HasCtrl returns true if Control is pressed.
func (m Modifier) HasCtrl() bool {
	return m.Has(ModCtrl)
}

// HasAlt returns true if Alt is pressed.
func (m Modifier) HasAlt() bool {
	return m.Has(ModAlt)
}

// HasShift returns true if Shift is pressed.
func (m Modifier) HasShift() bool {
	return m.Has(ModShift)
}

// With returns a new Modifier with the specified modifier added.
func (m Modifier) With(mod Modifier) Modifier {
	return m | mod
}

// Without returns a new Modifier with the specified modifier removed.
func (m Modifier) Without(mod Modifier) Modifier {
	return m &^ mod
}

// IsEmpty returns true if no modifiers are set.
func (m Modifier) IsEmpty() bool {
	return m == ModNone
}

// Prefix returns the canonical modifier prefix, e.g. "ctrl+alt+".
// Returns an empty string when no modifiers are set.
func (m Modifier) Prefix() string {
	var b strings.Builder
	if m.HasCtrl() {
		b.WriteString(TokenCtrl + "+")
	}
	if m.HasAlt() {
		b.WriteString(TokenAlt + "+")
	}
	if m.HasShift() {
		b.WriteString(TokenShift + "+")
	}
	return b.String()
}

// String returns the canonical modifier tokens joined by "+", e.g. "ctrl+alt".
func (m Modifier) String() string {
	return strings.TrimSuffix(m.Prefix(), "+")
}

// ModifierFromToken returns the Modifier for a canonical token.
// Returns ModNone if the token is not a modifier.
func ModifierFromToken(token string) Modifier {
	switch token {
	case TokenCtrl:
		return ModCtrl
	case TokenAlt:
		return ModAlt
	case TokenShift:
		return ModShift
	default:
		return ModNone
	}
}

// IsModifierToken reports whether token is one of ctrl, alt or shift.
func IsModifierToken(token string) bool {
	_, ok := modifierOrder[token]
	return ok
}
