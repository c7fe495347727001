package key

import "testing"

func TestModifierHas(t *testing.T) {
	tests := []struct {
		mod    Modifier
		check  Modifier
		expect bool
	}{
		{ModNone, ModCtrl, false},
		{ModCtrl, ModCtrl, true},
		{ModCtrl | ModAlt, ModCtrl, true},
		{ModCtrl | ModAlt, ModAlt, true},
		{ModCtrl | ModAlt, ModShift, false},
		{ModCtrl | ModAlt | ModShift, ModShift, true},
	}

	for _, tt := range tests {
		if got := tt.mod.Has(tt.check); got != tt.expect {
			t.Errorf("Modifier(%d).Has(%d) = %v, want %v", tt.mod, tt.check, got, tt.expect)
		}
	}
}

func TestModifierWithout(t *testing.T) {
	mod := ModCtrl | ModAlt | ModShift
	mod = mod.Without(ModAlt)
	if mod.HasAlt() {
		t.Error("Without(ModAlt) should remove Alt")
	}
	if !mod.HasCtrl() || !mod.HasShift() {
		t.Error("Without(ModAlt) should keep Ctrl and Shift")
	}
}

func TestModifierPrefix(t *testing.T) {
	tests := []struct {
		mod  Modifier
		want string
	}{
		{ModNone, ""},
		{ModCtrl, "ctrl+"},
		{ModShift | ModCtrl, "ctrl+shift+"},
		{ModShift | ModAlt | ModCtrl, "ctrl+alt+shift+"},
	}

	for _, tt := range tests {
		if got := tt.mod.Prefix(); got != tt.want {
			t.Errorf("Modifier(%d).Prefix() = %q, want %q", tt.mod, got, tt.want)
		}
	}

	if got := (ModAlt | ModShift).String(); got != "alt+shift" {
		t.Errorf("String() = %q, want %q", got, "alt+shift")
	}
}

func TestModifierFromToken(t *testing.T) {
	if ModifierFromToken("ctrl") != ModCtrl {
		t.Error("ctrl should map to ModCtrl")
	}
	if ModifierFromToken("b") != ModNone {
		t.Error("b should not be a modifier")
	}
	if !IsModifierToken("shift") || IsModifierToken("meta") {
		t.Error("IsModifierToken mismatch")
	}
}
