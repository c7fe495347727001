package lua

import (
	"strings"

	lua "github.com/yuin/gopher-lua"
)

// unsafeGlobals load code from disk or from strings and would let a
// script escape the host's bookkeeping.
var unsafeGlobals = []string{
	"dofile",
	"loadfile",
	"load",
	"loadstring",
	"require",
	"module",
}

// sandbox removes unsafe base functions and routes print to the given
// sink. A nil sink discards output.
func sandbox(L *lua.LState, print func(msg string)) {
	for _, name := range unsafeGlobals {
		L.SetGlobal(name, lua.LNil)
	}

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		if print == nil {
			return 0
		}
		n := L.GetTop()
		parts := make([]string, 0, n)
		for i := 1; i <= n; i++ {
			parts = append(parts, L.ToStringMeta(L.Get(i)).String())
		}
		print(strings.Join(parts, "\t"))
		return 0
	}))
}
