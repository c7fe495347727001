package hostkey

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dshills/scm/internal/input/key"
)

var teaKeys = map[tea.KeyType]key.Event{
	tea.KeyEnter:      key.NewEvent(key.CodeReturn, key.ModNone),
	tea.KeyTab:        key.NewEvent(key.CodeTab, key.ModNone),
	tea.KeyShiftTab:   key.NewEvent(key.CodeTab, key.ModShift),
	tea.KeyBackspace:  key.NewEvent(key.CodeBackspace, key.ModNone),
	tea.KeyEsc:        key.NewEvent(key.CodeEscape, key.ModNone),
	tea.KeySpace:      key.NewEvent(key.CodeSpace, key.ModNone),
	tea.KeyCtrlAt:     key.NewEvent(key.CodeSpace, key.ModCtrl),
	tea.KeyUp:         key.NewEvent(key.CodeUp, key.ModNone),
	tea.KeyDown:       key.NewEvent(key.CodeDown, key.ModNone),
	tea.KeyLeft:       key.NewEvent(key.CodeLeft, key.ModNone),
	tea.KeyRight:      key.NewEvent(key.CodeRight, key.ModNone),
	tea.KeyHome:       key.NewEvent(key.CodeHome, key.ModNone),
	tea.KeyEnd:        key.NewEvent(key.CodeEnd, key.ModNone),
	tea.KeyPgUp:       key.NewEvent(key.CodePageUp, key.ModNone),
	tea.KeyPgDown:     key.NewEvent(key.CodePageDown, key.ModNone),
	tea.KeyDelete:     key.NewEvent(key.CodeDelete, key.ModNone),
	tea.KeyInsert:     key.NewEvent(key.CodeInsert, key.ModNone),
	tea.KeyCtrlUp:     key.NewEvent(key.CodeUp, key.ModCtrl),
	tea.KeyCtrlDown:   key.NewEvent(key.CodeDown, key.ModCtrl),
	tea.KeyCtrlLeft:   key.NewEvent(key.CodeLeft, key.ModCtrl),
	tea.KeyCtrlRight:  key.NewEvent(key.CodeRight, key.ModCtrl),
	tea.KeyCtrlHome:   key.NewEvent(key.CodeHome, key.ModCtrl),
	tea.KeyCtrlEnd:    key.NewEvent(key.CodeEnd, key.ModCtrl),
	tea.KeyCtrlPgUp:   key.NewEvent(key.CodePageUp, key.ModCtrl),
	tea.KeyCtrlPgDown: key.NewEvent(key.CodePageDown, key.ModCtrl),
	tea.KeyShiftUp:    key.NewEvent(key.CodeUp, key.ModShift),
	tea.KeyShiftDown:  key.NewEvent(key.CodeDown, key.ModShift),
	tea.KeyShiftLeft:  key.NewEvent(key.CodeLeft, key.ModShift),
	tea.KeyShiftRight: key.NewEvent(key.CodeRight, key.ModShift),
	tea.KeyShiftHome:  key.NewEvent(key.CodeHome, key.ModShift),
	tea.KeyShiftEnd:   key.NewEvent(key.CodeEnd, key.ModShift),
	tea.KeyF1:         key.NewEvent(key.CodeF1, key.ModNone),
	tea.KeyF2:         key.NewEvent(key.CodeF1+1, key.ModNone),
	tea.KeyF3:         key.NewEvent(key.CodeF1+2, key.ModNone),
	tea.KeyF4:         key.NewEvent(key.CodeF1+3, key.ModNone),
	tea.KeyF5:         key.NewEvent(key.CodeF1+4, key.ModNone),
	tea.KeyF6:         key.NewEvent(key.CodeF1+5, key.ModNone),
	tea.KeyF7:         key.NewEvent(key.CodeF1+6, key.ModNone),
	tea.KeyF8:         key.NewEvent(key.CodeF1+7, key.ModNone),
	tea.KeyF9:         key.NewEvent(key.CodeF1+8, key.ModNone),
	tea.KeyF10:        key.NewEvent(key.CodeF1+9, key.ModNone),
	tea.KeyF11:        key.NewEvent(key.CodeF1+10, key.ModNone),
	tea.KeyF12:        key.NewEvent(key.CodeF1+11, key.ModNone),
}

// FromTea converts a bubbletea key message.
// It reports false for pastes, multi-rune input and keys without a key code.
func FromTea(msg tea.KeyMsg) (key.Event, bool) {
	if msg.Paste {
		return key.Event{}, false
	}
	var alt key.Modifier
	if msg.Alt {
		alt = key.ModAlt
	}

	if msg.Type == tea.KeyRunes {
		if len(msg.Runes) != 1 {
			return key.Event{}, false
		}
		return FromRune(msg.Runes[0], alt)
	}

	if ev, ok := teaKeys[msg.Type]; ok {
		return key.NewEvent(ev.KeyCode, ev.Modifiers().With(alt)), true
	}
	if msg.Type >= tea.KeyCtrlA && msg.Type <= tea.KeyCtrlZ {
		return key.NewEvent(key.CodeA+int(msg.Type-tea.KeyCtrlA), key.ModCtrl.With(alt)), true
	}
	return key.Event{}, false
}
