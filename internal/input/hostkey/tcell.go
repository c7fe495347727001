package hostkey

import (
	"github.com/gdamore/tcell/v2"

	"github.com/dshills/scm/internal/input/key"
)

var tcellKeys = map[tcell.Key]int{
	tcell.KeyBackspace2: key.CodeBackspace,
	tcell.KeyPause:      key.CodePause,
	tcell.KeyPgUp:       key.CodePageUp,
	tcell.KeyPgDn:       key.CodePageDown,
	tcell.KeyEnd:        key.CodeEnd,
	tcell.KeyHome:       key.CodeHome,
	tcell.KeyLeft:       key.CodeLeft,
	tcell.KeyUp:         key.CodeUp,
	tcell.KeyRight:      key.CodeRight,
	tcell.KeyDown:       key.CodeDown,
	tcell.KeyInsert:     key.CodeInsert,
	tcell.KeyDelete:     key.CodeDelete,
	tcell.KeyF1:         key.CodeF1,
	tcell.KeyF2:         key.CodeF1 + 1,
	tcell.KeyF3:         key.CodeF1 + 2,
	tcell.KeyF4:         key.CodeF1 + 3,
	tcell.KeyF5:         key.CodeF1 + 4,
	tcell.KeyF6:         key.CodeF1 + 5,
	tcell.KeyF7:         key.CodeF1 + 6,
	tcell.KeyF8:         key.CodeF1 + 7,
	tcell.KeyF9:         key.CodeF1 + 8,
	tcell.KeyF10:        key.CodeF1 + 9,
	tcell.KeyF11:        key.CodeF1 + 10,
	tcell.KeyF12:        key.CodeF1 + 11,
}

// FromTcell converts a tcell key event.
// It reports false for keys without a key code.
func FromTcell(ev *tcell.EventKey) (key.Event, bool) {
	if ev == nil {
		return key.Event{}, false
	}
	mods := tcellMods(ev.Modifiers())
	k := ev.Key()

	if k == tcell.KeyRune {
		return FromRune(ev.Rune(), mods)
	}
	if code, ok := tcellKeys[k]; ok {
		return key.NewEvent(code, mods), true
	}

	switch k {
	case tcell.KeyBacktab:
		return key.NewEvent(key.CodeTab, mods.With(key.ModShift)), true
	case tcell.KeyCtrlSpace:
		return key.NewEvent(key.CodeSpace, mods.With(key.ModCtrl)), true
	case tcell.KeyCtrlBackslash:
		return key.NewEvent('\\', mods.With(key.ModCtrl)), true
	case tcell.KeyCtrlRightSq:
		return key.NewEvent(']', mods.With(key.ModCtrl)), true
	}

	// Backspace, Tab, Enter and Escape share their codes with Ctrl+H, Ctrl+I,
	// Ctrl+M and Ctrl+[. tcell sets ModCtrl only for the control chord.
	if !mods.HasCtrl() {
		switch k {
		case tcell.KeyBackspace:
			return key.NewEvent(key.CodeBackspace, mods), true
		case tcell.KeyTab:
			return key.NewEvent(key.CodeTab, mods), true
		case tcell.KeyEnter:
			return key.NewEvent(key.CodeReturn, mods), true
		case tcell.KeyEscape:
			return key.NewEvent(key.CodeEscape, mods), true
		}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return key.NewEvent(key.CodeA+int(k-tcell.KeyCtrlA), mods.With(key.ModCtrl)), true
	}
	if k == tcell.KeyEscape {
		return key.NewEvent(key.CodeEscape, mods), true
	}
	return key.Event{}, false
}

func tcellMods(m tcell.ModMask) key.Modifier {
	var mods key.Modifier
	if m&tcell.ModCtrl != 0 {
		mods = mods.With(key.ModCtrl)
	}
	if m&(tcell.ModAlt|tcell.ModMeta) != 0 {
		mods = mods.With(key.ModAlt)
	}
	if m&tcell.ModShift != 0 {
		mods = mods.With(key.ModShift)
	}
	return mods
}
