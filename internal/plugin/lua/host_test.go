package lua

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	glua "github.com/yuin/gopher-lua"

	"github.com/dshills/scm/internal/input/shortcut"
)

func newHost(t *testing.T, opts ...StateOption) (*shortcut.Root, *Host) {
	t.Helper()
	root := shortcut.New()
	h := NewHost(root, "test.lua", nil, opts...)
	t.Cleanup(func() { _ = h.Close() })
	return root, h
}

func TestStateSandbox(t *testing.T) {
	s := NewState(nil)
	defer s.Close()

	for _, name := range []string{"io", "os", "debug", "package", "dofile", "loadfile", "load", "loadstring", "require"} {
		assert.Equal(t, glua.LNil, s.L.GetGlobal(name), name)
	}
	for _, name := range []string{"string", "table", "math", "pairs", "tostring"} {
		assert.NotEqual(t, glua.LNil, s.L.GetGlobal(name), name)
	}
}

func TestStatePrint(t *testing.T) {
	var got []string
	s := NewState(func(msg string) { got = append(got, msg) })
	defer s.Close()

	require.NoError(t, s.DoString(`print("a", 1, true)`))
	assert.Equal(t, []string{"a\t1\ttrue"}, got)
}

func TestStateCall(t *testing.T) {
	s := NewState(nil)
	defer s.Close()

	require.NoError(t, s.DoString(`function double(x) return x * 2 end`))
	ret, err := s.Call(s.L.GetGlobal("double"), glua.LNumber(21))
	require.NoError(t, err)
	assert.Equal(t, glua.LNumber(42), ret)

	_, err = s.Call(glua.LString("nope"))
	assert.ErrorIs(t, err, ErrNotFunction)
}

func TestStateTimeout(t *testing.T) {
	s := NewState(nil, WithExecutionTimeout(50*time.Millisecond))
	defer s.Close()

	err := s.DoString(`while true do end`)
	assert.ErrorIs(t, err, ErrExecutionTimeout)
}

func TestStateClosed(t *testing.T) {
	s := NewState(nil)
	require.NoError(t, s.Close())
	assert.True(t, s.IsClosed())
	assert.ErrorIs(t, s.DoString(`x = 1`), ErrStateClosed)
	assert.ErrorIs(t, s.DoFile("x.lua"), ErrStateClosed)
	_, err := s.Call(glua.LNil)
	assert.ErrorIs(t, err, ErrStateClosed)
	require.NoError(t, s.Close())
}

func TestHostOn(t *testing.T) {
	root, h := newHost(t)

	require.NoError(t, h.Run(`
		calls = {}
		scm.on("Ctrl+B", function(sc, mod, low)
			table.insert(calls, sc .. ":" .. mod .. ":" .. low)
			return true
		end)
	`))

	assert.True(t, root.Static().Fire("ctrl+b"))
	calls := h.state.L.GetGlobal("calls").(*glua.LTable)
	assert.Equal(t, "ctrl+b:-1:-1", calls.RawGetInt(1).String())
}

func TestHostRangeArguments(t *testing.T) {
	root, h := newHost(t)

	require.NoError(t, h.Run(`
		last = nil
		scm.on("ctrl+[0..9]", function(sc, mod, low)
			last = mod .. "/" .. low
			return true
		end)
	`))

	assert.True(t, root.Static().Fire("ctrl+2"))
	assert.Equal(t, "2/0", h.state.L.GetGlobal("last").String())
}

func TestHostReturnValue(t *testing.T) {
	root, h := newHost(t)

	require.NoError(t, h.Run(`
		scm.on("a", function() return false end)
		scm.on("b", function() end)
		scm.on("c", function() return 1 end)
		scm.on("d", function() error("boom") end)
	`))

	s := root.Static()
	assert.False(t, s.Fire("a"))
	assert.False(t, s.Fire("b"))
	assert.True(t, s.Fire("c"))
	assert.False(t, s.Fire("d"))
}

func TestHostDefaultHandlerRunsLast(t *testing.T) {
	root, h := newHost(t)

	require.NoError(t, h.Run(`
		order = ""
		scm.on("x", function() order = order .. "d"; return true end, true)
		scm.on("x", function() order = order .. "r"; return false end)
	`))

	assert.True(t, root.Static().Fire("x"))
	assert.Equal(t, "rd", h.state.L.GetGlobal("order").String())
}

func TestHostDuplicateDefaultRaises(t *testing.T) {
	_, h := newHost(t)

	err := h.Run(`
		scm.on("ctrl+b", function() end, true)
		scm.on("ctrl+b", function() end, true)
	`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can not add another default handler for shortcut ctrl+b")
}

func TestHostRemove(t *testing.T) {
	root, h := newHost(t)

	require.NoError(t, h.Run(`
		f = function() return true end
		g = function() return true end
		scm.on("a, b", f)
		scm.on("a", g)
	`))

	s := root.Static()
	require.NoError(t, h.Run(`scm.remove("a", f)`))
	assert.Len(t, root.Bindings("main", "a"), 1)

	require.NoError(t, h.Run(`scm.remove("a")`))
	assert.False(t, s.Exists("a"))
	assert.True(t, s.Exists("b"))

	require.NoError(t, h.Run(`scm.remove("b", function() end)`))
	assert.True(t, s.Exists("b"))

	require.NoError(t, h.Run(`scm.remove()`))
	assert.False(t, s.Exists("b"))

	require.NoError(t, h.Run(`
		scm.on("c", f)
		scm.on("d", g)
		scm.remove(nil, f)
	`))
	assert.False(t, s.Exists("c"))
	assert.False(t, s.Exists("d"))
}

func TestHostRemoveKeepsOtherContexts(t *testing.T) {
	root, h := newHost(t)

	_, err := root.Static().OnFunc("a", func(string, int, int) bool { return true })
	require.NoError(t, err)
	require.NoError(t, h.Run(`scm.on("a", function() return false end)`))
	require.NoError(t, h.Run(`scm.remove()`))

	assert.Len(t, root.Bindings("main", "a"), 1)
}

func TestHostLayers(t *testing.T) {
	root, h := newHost(t)

	require.NoError(t, h.Run(`
		hits = 0
		local nav = scm.layer("nav")
		nav.on("j", function() hits = hits + 1; return true end)
		assert(nav.name == "nav")
		assert(not nav.is_active())
	`))

	s := root.Static()
	assert.False(t, s.Fire("j"))

	require.NoError(t, h.Run(`scm.activate("nav")`))
	assert.Equal(t, "nav", root.ActiveLayer())
	require.NoError(t, h.Run(`assert(scm.active() == "nav")`))
	assert.True(t, s.Fire("j"))

	require.NoError(t, h.Run(`scm.layer("nav").deactivate()`))
	assert.Equal(t, "main", root.ActiveLayer())
	assert.Equal(t, []string{"nav"}, h.Layers())
}

func TestHostDeactivateErrors(t *testing.T) {
	_, h := newHost(t)

	err := h.Run(`scm.deactivate("main")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can not deactivate main layer")

	err = h.Run(`scm.deactivate("other")`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can not deactivate layer because is not an active layer")
}

func TestHostExistsAndNormalize(t *testing.T) {
	_, h := newHost(t)

	require.NoError(t, h.Run(`
		assert(scm.normalize("Shift+Ctrl+A") == "ctrl+shift+a")
		assert(not scm.exists("ctrl+a"))
		scm.on("ctrl+a", function() end)
		assert(scm.exists("Ctrl+A"))
	`))
}

func TestHostHandlerMutatesDuringDispatch(t *testing.T) {
	root, h := newHost(t)

	require.NoError(t, h.Run(`
		scm.on("q", function()
			scm.remove("q")
			scm.on("w", function() return true end)
			return true
		end)
	`))

	s := root.Static()
	assert.True(t, s.Fire("q"))
	assert.False(t, s.Exists("q"))
	assert.True(t, s.Fire("w"))
}

func TestHostClose(t *testing.T) {
	root := shortcut.New()
	h := NewHost(root, "close.lua", nil)

	require.NoError(t, h.Run(`
		scm.on("a", function() return true end)
		scm.layer("nav").on("b", function() return true end)
	`))
	require.NoError(t, h.Close())

	assert.Empty(t, root.Shortcuts("main"))
	assert.Empty(t, root.Shortcuts("nav"))
	assert.ErrorIs(t, h.Run(`x = 1`), ErrStateClosed)
	require.NoError(t, h.Close())
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "keys.lua")
	require.NoError(t, os.WriteFile(path, []byte(`scm.on("ctrl+k", function() return true end)`), 0o644))

	root := shortcut.New()
	h, err := LoadFile(root, path, nil)
	require.NoError(t, err)
	defer h.Close()

	assert.Equal(t, "keys.lua", h.Name())
	assert.True(t, root.Static().Fire("ctrl+k"))
}

func TestLoadFileError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.lua")
	require.NoError(t, os.WriteFile(path, []byte(`scm.on("a", function() end) this is not lua`), 0o644))

	root := shortcut.New()
	_, err := LoadFile(root, path, nil)
	require.Error(t, err)
	assert.Empty(t, root.Shortcuts("main"))

	_, err = LoadFile(root, filepath.Join(dir, "missing.lua"), nil)
	require.Error(t, err)
}
