package shortcut

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/dshills/scm/internal/input/keymap"
	scmlog "github.com/dshills/scm/internal/log"
)

func TestDebugTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: scmlog.LevelTrace}))
	root := New(WithLogger(logger))
	m := root.Create(keymap.NewContext("dbg"))
	mustOn(t, m, "Ctrl+B", newSpy("one", nil).handler)

	m.Event(ctrlB)
	if strings.Contains(buf.String(), "dispatch shortcut") {
		t.Fatal("trace output written while debug mode is off")
	}

	m.DebugMode(true)
	if !root.Debug() {
		t.Fatal("Debug() = false after DebugMode(true)")
	}
	m.Event(ctrlB)
	m.Event(ctrlC)

	out := buf.String()
	for _, want := range []string{
		"shortcut debug mode changed",
		"dispatch shortcut",
		"handler declined",
		"no handler for shortcut",
		"shortcut=ctrl+c",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("trace output missing %q:\n%s", want, out)
		}
	}
}

func TestDebugHasNoBehavioralEffect(t *testing.T) {
	quiet := New()
	loud := New(WithDebug(true))

	for _, root := range []*Root{quiet, loud} {
		m := root.Create(keymap.NewContext("x"))
		h := newSpy("one", nil)
		h.result = true
		mustOn(t, m, "Ctrl+B", h.handler)
		if !m.Event(ctrlB) {
			t.Error("Event() should be handled regardless of debug mode")
		}
	}
}
