package key

import (
	"strings"
	"unicode"
)

// Well-known key codes.
const (
	CodeBackspace  = 8
	CodeTab        = 9
	CodeReturn     = 13
	CodePause      = 19
	CodeCapsLock   = 20
	CodeEscape     = 27
	CodeSpace      = 32
	CodePageUp     = 33
	CodePageDown   = 34
	CodeEnd        = 35
	CodeHome       = 36
	CodeLeft       = 37
	CodeUp         = 38
	CodeRight      = 39
	CodeDown       = 40
	CodeInsert     = 45
	CodeDelete     = 46
	CodeDigit0     = 48
	CodeDigit9     = 57
	CodeA          = 65
	CodeZ          = 90
	CodeNumpad0    = 96
	CodeNumpad9    = 105
	CodeNumpadAdd  = 107
	CodeNumpadSub  = 109
	CodeNumpadDiv  = 111
	CodeF1         = 112
	CodeF12        = 123
	CodeNumLock    = 144
	CodeScrollLock = 145
	CodeEqualPlus  = 187
	CodeComma      = 188
	CodeMinus      = 189
	CodePeriod     = 190
	CodeSlash      = 191
)

// codeNames maps key codes to their canonical token.
var codeNames = map[int]string{
	CodeBackspace:  "backspace",
	CodeTab:        "tab",
	CodeReturn:     "return",
	CodePause:      "pause",
	CodeCapsLock:   "capslock",
	CodeEscape:     "esc",
	CodeSpace:      "space",
	CodePageUp:     "pageup",
	CodePageDown:   "pagedown",
	CodeEnd:        "end",
	CodeHome:       "home",
	CodeLeft:       "left",
	CodeUp:         "up",
	CodeRight:      "right",
	CodeDown:       "down",
	CodeInsert:     "insert",
	CodeDelete:     "delete",
	CodeNumpadAdd:  "+",
	CodeNumpadSub:  "-",
	CodeNumpadDiv:  "/",
	112:            "f1",
	113:            "f2",
	114:            "f3",
	115:            "f4",
	116:            "f5",
	117:            "f6",
	118:            "f7",
	119:            "f8",
	120:            "f9",
	121:            "f10",
	122:            "f11",
	CodeF12:        "f12",
	CodeNumLock:    "numlock",
	CodeScrollLock: "scrolllock",
	CodeEqualPlus:  "+",
	CodeComma:      ",",
	CodeMinus:      "-",
	CodePeriod:     ".",
	CodeSlash:      "/",
}

// shiftInsensitive lists keys whose glyph needs Shift on common layouts.
// Shift is not reported for them.
var shiftInsensitive = map[int]bool{
	CodeEqualPlus: true,
}

// nameCodes is the reverse of codeNames, preferring the main keyboard over the keypad.
var nameCodes = func() map[string]int {
	m := make(map[string]int, len(codeNames))
	for code, name := range codeNames {
		if prev, ok := m[name]; ok && prev > code {
			continue
		}
		m[name] = code
	}
	return m
}()

// fixNumpadDigit maps numeric keypad digits onto their top-row equivalents.
func fixNumpadDigit(code int) int {
	if code >= CodeNumpad0 && code <= CodeNumpad9 {
		return code - (CodeNumpad0 - CodeDigit0)
	}
	return code
}

// NameForCode returns the canonical key token for a key code.
// Returns an empty string for codes that cannot produce a token.
func NameForCode(code int) string {
	if name, ok := codeNames[code]; ok {
		return name
	}
	code = fixNumpadDigit(code)
	if code <= 0 || code > unicode.MaxRune {
		return ""
	}
	r := rune(code)
	if !unicode.IsPrint(r) || unicode.IsSpace(r) {
		return ""
	}
	return strings.ToLower(string(r))
}

// CodeForName returns the key code producing the canonical key token.
// Returns 0 and false if no code produces it.
func CodeForName(name string) (int, bool) {
	if code, ok := nameCodes[name]; ok {
		return code, true
	}
	runes := []rune(name)
	if len(runes) != 1 {
		return 0, false
	}
	r := unicode.ToUpper(runes[0])
	switch {
	case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return int(r), true
	}
	return 0, false
}

// IsShiftInsensitive reports whether Shift is ignored for the key code.
func IsShiftInsensitive(code int) bool {
	return shiftInsensitive[code]
}
