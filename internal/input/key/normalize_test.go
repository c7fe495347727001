package key

import "testing"

func event(code int, ctrl, alt, shift bool) Event {
	return Event{Ctrl: ctrl, Alt: alt, Shift: shift, KeyCode: code}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ctrl+B", "ctrl+b"},
		{"Ctrl+Space", "ctrl+space"},
		{"Alt+Ctrl+B", "ctrl+alt+b"},
		{"Alt+SHIFT+Ctrl+B", "ctrl+alt+shift+b"},
		{"+", "+"},
		{"-", "-"},
		{"Ctrl+Enter", "ctrl+return"},
		{"Ctrl+Return", "ctrl+return"},
		{"Escape", "esc"},
		{"Ctrl++", "ctrl++"},
		{"Shift+Ctrl++", "ctrl+shift++"},
		{"+Ctrl+B+", "ctrl+b"},
		{"Ctrl++B", "ctrl+b"},
		{"Control+Option+X", "ctrl+alt+x"},
		{"Ctrl+[0..3]", "ctrl+[0..3]"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{
		"Ctrl+B", "Alt+Shift+Ctrl+B", "+", "Ctrl++", "Ctrl+Enter",
		"b+ctrl", "Ctrl+[2..4]", "f5", "Shift+Alt+,", "Ctrl+-",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		if once != twice {
			t.Errorf("Normalize(Normalize(%q)) = %q, want %q", in, twice, once)
		}
	}
}

func TestNormalizeModifierOrderInvariant(t *testing.T) {
	a := Normalize("Alt+Ctrl+B")
	b := Normalize("Ctrl+Alt+B")
	if a != b || a != "ctrl+alt+b" {
		t.Errorf("Normalize order mismatch: %q vs %q", a, b)
	}
}

func TestNormalizePattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ctrl+B, Ctrl+C", "ctrl+b, ctrl+c"},
		{"Shift+Ctrl+B, Alt+Ctrl+[0..2]", "ctrl+shift+b, ctrl+alt+[0..2]"},
		{"Ctrl+B", "ctrl+b"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizePattern(tt.in); got != tt.want {
			t.Errorf("NormalizePattern(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   Event
		want string
	}{
		{"ctrl space", event(32, true, false, false), "ctrl+space"},
		{"ctrl esc", event(27, true, false, false), "ctrl+esc"},
		{"ctrl b", event(66, true, false, false), "ctrl+b"},
		{"ctrl alt space", event(32, true, true, false), "ctrl+alt+space"},
		{"all modifiers", event(32, true, true, true), "ctrl+alt+shift+space"},
		{"numpad plus", event(107, false, false, false), "+"},
		{"shifted plus", event(187, false, false, true), "+"},
		{"numpad minus", event(109, false, false, false), "-"},
		{"minus", event(189, false, false, false), "-"},
		{"comma", event(188, true, false, false), "ctrl+,"},
		{"period", event(190, true, false, false), "ctrl+."},
		{"slash", event(191, true, false, false), "ctrl+/"},
		{"numpad slash", event(111, false, false, false), "/"},
		{"return", event(13, false, false, false), "return"},
		{"numpad digit", event(98, true, false, false), "ctrl+2"},
		{"top row digit", event(50, true, false, false), "ctrl+2"},
		{"function key", event(116, false, false, true), "shift+f5"},
		{"no code", event(0, true, false, false), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromEvent(tt.ev); got != tt.want {
				t.Errorf("FromEvent(%+v) = %q, want %q", tt.ev, got, tt.want)
			}
		})
	}
}

func TestFromEventMatchesNormalize(t *testing.T) {
	// An event and its written form must produce the same lookup key.
	pairs := []struct {
		ev      Event
		written string
	}{
		{event(66, true, true, false), "Alt+Ctrl+B"},
		{event(13, true, false, false), "Ctrl+Enter"},
		{event(107, true, false, false), "Ctrl++"},
		{event(27, false, false, true), "Shift+Escape"},
	}

	for _, p := range pairs {
		if got, want := FromEvent(p.ev), Normalize(p.written); got != want {
			t.Errorf("FromEvent(%+v) = %q, Normalize(%q) = %q", p.ev, got, p.written, want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Event
		wantOK bool
	}{
		{"Ctrl+B", event(66, true, false, false), true},
		{"Alt+Shift+F5", event(116, false, true, true), true},
		{"+", event(187, false, false, false), true},
		{"Ctrl++", event(187, true, false, false), true},
		{"Ctrl+-", event(189, true, false, false), true},
		{"2", event(50, false, false, false), true},
		{"Ctrl+[0..3]", Event{}, false},
		{"", Event{}, false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if ok != tt.wantOK {
			t.Errorf("Parse(%q) ok = %v, want %v", tt.in, ok, tt.wantOK)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, s := range []string{"ctrl+b", "ctrl+alt+shift+space", "f12", "ctrl+,", "alt+pagedown"} {
		ev, ok := Parse(s)
		if !ok {
			t.Fatalf("Parse(%q) failed", s)
		}
		if got := FromEvent(ev); got != s {
			t.Errorf("FromEvent(Parse(%q)) = %q", s, got)
		}
	}
}
