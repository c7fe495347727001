package key

import "strings"

const (
	plus = "+"

	// AlternativeSeparator separates alternatives in a multi-shortcut pattern.
	AlternativeSeparator = ", "
)

// aliases maps alternate key names onto canonical tokens.
var aliases = map[string]string{
	"enter":   "return",
	"escape":  "esc",
	"del":     "delete",
	"ins":     "insert",
	"pgup":    "pageup",
	"pgdn":    "pagedown",
	"bs":      "backspace",
	"control": TokenCtrl,
	"option":  TokenAlt,
}

// FromEvent returns the canonical shortcut for a key event.
// Returns an empty string if the key code produces no token.
func FromEvent(e Event) string {
	name := NameForCode(e.KeyCode)
	if name == "" {
		return ""
	}

	mods := e.Modifiers()
	if IsShiftInsensitive(e.KeyCode) {
		mods = mods.Without(ModShift)
	}
	return mods.Prefix() + name
}

// Normalize returns the canonical form of a single shortcut string.
//
// Modifiers are sorted into ctrl, alt, shift order, remaining tokens keep their
// relative order, empty tokens are dropped and key aliases are resolved.
// An empty input is returned unchanged.
func Normalize(shortcut string) string {
	if shortcut == "" || shortcut == plus {
		return shortcut
	}

	s := strings.ToLower(strings.TrimSpace(shortcut))

	// "ctrl++" names the plus key; keep it out of the split.
	trailingPlus := false
	if strings.HasSuffix(s, plus+plus) {
		trailingPlus = true
		s = strings.TrimSuffix(s, plus)
	}

	var mods [3]string
	var others []string
	for _, part := range strings.Split(s, plus) {
		part = strings.TrimSpace(part)
		if alias, ok := aliases[part]; ok {
			part = alias
		}
		if order, ok := modifierOrder[part]; ok {
			mods[order] = part
			continue
		}
		if part != "" {
			others = append(others, part)
		}
	}
	if trailingPlus {
		others = append(others, plus)
	}

	result := make([]string, 0, len(mods)+len(others))
	for _, m := range mods {
		if m != "" {
			result = append(result, m)
		}
	}
	result = append(result, others...)
	return strings.Join(result, plus)
}

// NormalizePattern normalizes every alternative of a multi-shortcut pattern
// such as "Ctrl+B, Alt+Ctrl+C" and rejoins them.
func NormalizePattern(pattern string) string {
	if pattern == "" {
		return pattern
	}
	alts := SplitAlternatives(pattern)
	for i, alt := range alts {
		alts[i] = Normalize(alt)
	}
	return strings.Join(alts, AlternativeSeparator)
}

// SplitAlternatives splits a pattern on the alternative separator.
// A lone "+" alternative is preserved.
func SplitAlternatives(pattern string) []string {
	return strings.Split(pattern, AlternativeSeparator)
}

// Parse parses a canonical or free-form shortcut into an event.
// Returns false if the key token has no key code.
func Parse(shortcut string) (Event, bool) {
	norm := Normalize(shortcut)
	if norm == "" {
		return Event{}, false
	}

	var mods Modifier
	name := norm
	if norm != plus {
		if strings.HasSuffix(norm, plus+plus) {
			name = plus
			norm = strings.TrimSuffix(norm, plus+plus)
		} else {
			idx := strings.LastIndex(norm, plus)
			name = norm[idx+1:]
			norm = norm[:max(idx, 0)]
		}
		for _, part := range strings.Split(norm, plus) {
			mods = mods.With(ModifierFromToken(part))
		}
	}

	code, ok := CodeForName(name)
	if !ok {
		return Event{}, false
	}
	return NewEvent(code, mods), true
}
