package hostkey

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/scm/internal/input/key"
)

func TestFromRune(t *testing.T) {
	tests := []struct {
		r    rune
		mods key.Modifier
		want string
		ok   bool
	}{
		{'b', key.ModNone, "b", true},
		{'b', key.ModCtrl, "ctrl+b", true},
		{'B', key.ModNone, "shift+b", true},
		{'a', key.ModNone, "a", true},
		{'7', key.ModAlt, "alt+7", true},
		{'!', key.ModNone, "shift+1", true},
		{'+', key.ModNone, "+", true},
		{'+', key.ModCtrl, "ctrl++", true},
		{'-', key.ModNone, "-", true},
		{'?', key.ModNone, "shift+/", true},
		{' ', key.ModCtrl, "ctrl+space", true},
		{'=', key.ModNone, "=", true},
		{'é', key.ModNone, "é", true},
		{'É', key.ModNone, "shift+é", true},
		{'`', key.ModNone, "", false},
		{'{', key.ModNone, "", false},
		{'"', key.ModNone, "", false},
	}

	for _, tt := range tests {
		ev, ok := FromRune(tt.r, tt.mods)
		if ok != tt.ok {
			t.Errorf("FromRune(%q) ok = %v, want %v", tt.r, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if got := key.FromEvent(ev); got != tt.want {
			t.Errorf("FromRune(%q, %v) = %q, want %q", tt.r, tt.mods, got, tt.want)
		}
	}
}

func TestFromTcell(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want string
		ok   bool
	}{
		{"rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), "x", true},
		{"alt rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModAlt), "alt+x", true},
		{"meta folds to alt", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModMeta), "alt+x", true},
		{"ctrl letter", tcell.NewEventKey(tcell.KeyCtrlB, 0, tcell.ModCtrl), "ctrl+b", true},
		{"ctrl alt letter", tcell.NewEventKey(tcell.KeyCtrlS, 0, tcell.ModCtrl|tcell.ModAlt), "ctrl+alt+s", true},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), "return", true},
		{"tab", tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), "tab", true},
		{"backtab", tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), "shift+tab", true},
		{"backspace", tcell.NewEventKey(tcell.KeyBackspace, 0, tcell.ModNone), "backspace", true},
		{"backspace2", tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone), "backspace", true},
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), "esc", true},
		{"ctrl escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModCtrl), "ctrl+esc", true},
		{"ctrl space", tcell.NewEventKey(tcell.KeyCtrlSpace, 0, tcell.ModCtrl), "ctrl+space", true},
		{"f5", tcell.NewEventKey(tcell.KeyF5, 0, tcell.ModNone), "f5", true},
		{"shift f12", tcell.NewEventKey(tcell.KeyF12, 0, tcell.ModShift), "shift+f12", true},
		{"page down", tcell.NewEventKey(tcell.KeyPgDn, 0, tcell.ModNone), "pagedown", true},
		{"ctrl up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModCtrl), "ctrl+up", true},
		{"delete", tcell.NewEventKey(tcell.KeyDelete, 0, tcell.ModNone), "delete", true},
		{"unmapped", tcell.NewEventKey(tcell.KeyF40, 0, tcell.ModNone), "", false},
		{"nil", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := FromTcell(tt.ev)
			if ok != tt.ok {
				t.Fatalf("FromTcell() ok = %v, want %v", ok, tt.ok)
			}
			if got := key.FromEvent(ev); ok && got != tt.want {
				t.Errorf("FromTcell() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestFromTea(t *testing.T) {
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want string
		ok   bool
	}{
		{"rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "q", true},
		{"alt rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}, Alt: true}, "alt+q", true},
		{"upper rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Q'}}, "shift+q", true},
		{"ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlK}, "ctrl+k", true},
		{"ctrl h", tea.KeyMsg{Type: tea.KeyCtrlH}, "ctrl+h", true},
		{"alt ctrl letter", tea.KeyMsg{Type: tea.KeyCtrlC, Alt: true}, "ctrl+alt+c", true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, "return", true},
		{"tab", tea.KeyMsg{Type: tea.KeyTab}, "tab", true},
		{"shift tab", tea.KeyMsg{Type: tea.KeyShiftTab}, "shift+tab", true},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, "backspace", true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, "esc", true},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, "space", true},
		{"ctrl right", tea.KeyMsg{Type: tea.KeyCtrlRight}, "ctrl+right", true},
		{"shift home", tea.KeyMsg{Type: tea.KeyShiftHome}, "shift+home", true},
		{"f1", tea.KeyMsg{Type: tea.KeyF1}, "f1", true},
		{"paste", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("hello"), Paste: true}, "", false},
		{"multi rune", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("ab")}, "", false},
		{"unmapped", tea.KeyMsg{Type: tea.KeyF20}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := FromTea(tt.msg)
			if ok != tt.ok {
				t.Fatalf("FromTea() ok = %v, want %v", ok, tt.ok)
			}
			if got := key.FromEvent(ev); ok && got != tt.want {
				t.Errorf("FromTea() = %q, want %q", got, tt.want)
			}
		})
	}
}
