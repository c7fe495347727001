package shortcut

func (r *Root) dispatch(shortcut string) bool {
	if shortcut == "" {
		return false
	}
	r.events.Add(1)

	active := r.stack.Active()
	// DispatchOrder copies the chain under the store lock, so handlers are
	// free to mutate it while we iterate.
	bindings := active.Store().DispatchOrder(shortcut)
	if len(bindings) == 0 {
		r.trace("no handler for shortcut", "shortcut", shortcut, "layer", active.Name())
		return false
	}

	r.trace("dispatch shortcut", "shortcut", shortcut, "layer", active.Name(), "handlers", len(bindings))
	for i, b := range bindings {
		r.handlerCalls.Add(1)
		if b.Handler.Call(shortcut, b.Modifier, b.RangeLow) {
			r.handled.Add(1)
			r.trace("shortcut handled", "shortcut", shortcut, "index", i, "handler", b.Handler.Name())
			return true
		}
		r.trace("handler declined", "shortcut", shortcut, "index", i, "handler", b.Handler.Name())
	}

	r.trace("no more handlers to try", "shortcut", shortcut)
	return false
}

func (r *Root) exists(shortcut string) bool {
	if shortcut == "" {
		return false
	}
	active := r.stack.Active()
	ok := active.Store().Exists(shortcut)
	r.trace("shortcut lookup", "shortcut", shortcut, "layer", active.Name(), "registered", ok)
	return ok
}
