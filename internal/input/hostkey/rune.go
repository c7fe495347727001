package hostkey

import (
	"unicode"

	"github.com/dshills/scm/internal/input/key"
)

type runeKey struct {
	code  int
	shift bool
}

// shiftedRunes maps characters typed with Shift, or without a key code of
// their own, to the US-layout key producing them.
var shiftedRunes = map[rune]runeKey{
	'!': {'1', true},
	'@': {'2', true},
	'#': {'3', true},
	'$': {'4', true},
	'%': {'5', true},
	'^': {'6', true},
	'&': {'7', true},
	'*': {'8', true},
	'(': {'9', true},
	')': {'0', true},
	'+': {key.CodeEqualPlus, true},
	'-': {key.CodeMinus, false},
	'_': {key.CodeMinus, true},
	',': {key.CodeComma, false},
	'<': {key.CodeComma, true},
	'.': {key.CodePeriod, false},
	'>': {key.CodePeriod, true},
	'/': {key.CodeSlash, false},
	'?': {key.CodeSlash, true},
	' ': {key.CodeSpace, false},
}

// FromRune returns the event for typing r with mods.
// It reports false when r has no key code.
func FromRune(r rune, mods key.Modifier) (key.Event, bool) {
	if rk, ok := shiftedRunes[r]; ok {
		if rk.shift {
			mods = mods.With(key.ModShift)
		}
		return key.NewEvent(rk.code, mods), true
	}

	switch {
	case r >= 'a' && r <= 'z':
		return key.NewEvent(int(unicode.ToUpper(r)), mods), true
	case r >= 'A' && r <= 'Z':
		return key.NewEvent(int(r), mods.With(key.ModShift)), true
	case r >= '0' && r <= '9':
		return key.NewEvent(int(r), mods), true
	}

	if unicode.IsUpper(r) {
		mods = mods.With(key.ModShift)
	}
	code := int(r)
	// Only keep characters whose code point is not taken by another key.
	if key.NameForCode(code) != string(unicode.ToLower(r)) {
		return key.Event{}, false
	}
	return key.NewEvent(code, mods), true
}
