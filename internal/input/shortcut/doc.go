// Package shortcut ties the normalizer, the keymap store and the layer
// stack together into the registration and dispatch API.
//
// A Root owns every layer and the activation stack. Callers obtain a
// Manager bound to a context and a layer, register handlers on it and feed
// key events to Event:
//
//	root := shortcut.New()
//	m := root.Create(keymap.NewContext("editor"))
//	_, _ = m.OnFunc("Ctrl+S", func(sc string, mod, low int) bool {
//		save()
//		return true
//	})
//	handled := m.Event(key.NewEvent('S', key.ModCtrl))
//
// Dispatch always targets the active layer, whichever Manager receives the
// event. Handlers run from the most recent registration to the oldest,
// with the default handler last, and the first handler returning true
// stops the chain.
//
// Handlers may register, remove, activate or deactivate while being
// dispatched. Each dispatch iterates a snapshot of the chain taken before
// the first handler runs: handlers removed during the dispatch still run
// if they were in the snapshot, and handlers added during the dispatch run
// from the next event on.
package shortcut
