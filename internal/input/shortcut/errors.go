package shortcut

import "errors"

// ErrStaticRebind is returned when rebinding the static manager.
var ErrStaticRebind = errors.New("can not change context on static manager, use Create with the right context")
