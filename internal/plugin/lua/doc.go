// Package lua runs Lua scripts that register shortcut handlers.
//
// Scripts run in a gopher-lua state with only the base, table, string and
// math libraries. The global scm table exposes the manager:
//
//	scm.on("ctrl+s", function(shortcut, modifier, rangeLow)
//	    print("save")
//	    return true
//	end)
//
//	local nav = scm.layer("nav")
//	nav.on("[1..9]", function(shortcut, i) return i > 0 end)
//	nav.activate()
//
//	scm.remove("ctrl+s")
//	scm.deactivate("nav")
//	scm.exists("Ctrl+S")
//	scm.normalize("Shift+Ctrl+A") -- "ctrl+shift+a"
//
// A handler's truthy return value marks the shortcut handled. Each Host
// registers under its own context and Close removes every binding the
// script made.
package lua
