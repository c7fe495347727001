package layer

import (
	"errors"
	"sync"
)

var (
	// ErrDeactivateMain is returned when deactivating the main layer.
	ErrDeactivateMain = errors.New("can not deactivate main layer")

	// ErrLayerInactive is returned when deactivating a layer that is not on the stack.
	ErrLayerInactive = errors.New("can not deactivate layer because is not an active layer")
)

// ChangeCallback is called after the active layer changes.
type ChangeCallback func(from, to *Layer)

// Stack is the layer activation stack.
// The main layer is never pushed; it is active while the stack is empty.
type Stack struct {
	mu sync.RWMutex

	main   *Layer
	layers []*Layer

	nextID    int
	callbacks map[int]ChangeCallback
	order     []int
}

// NewStack creates an empty stack whose fallback is main.
func NewStack(main *Layer) *Stack {
	return &Stack{
		main:      main,
		layers:    make([]*Layer, 0, 4),
		callbacks: make(map[int]ChangeCallback),
	}
}

// Activate makes l the active layer.
//
// Activating the main layer clears the stack. Activating a layer that is
// already on the stack drops every layer activated after it.
func (s *Stack) Activate(l *Layer) {
	s.mu.Lock()

	from := s.activeLocked()
	switch {
	case l == nil || l.IsMain():
		s.layers = s.layers[:0]
	default:
		if i := s.indexLocked(l); i >= 0 {
			clear(s.layers[i+1:])
			s.layers = s.layers[:i+1]
		} else {
			s.layers = append(s.layers, l)
		}
	}
	to := s.activeLocked()
	callbacks := s.callbacksLocked()
	s.mu.Unlock()

	s.notify(callbacks, from, to)
}

// Deactivate removes l from the stack.
func (s *Stack) Deactivate(l *Layer) error {
	if l == nil || l.IsMain() {
		return ErrDeactivateMain
	}

	s.mu.Lock()
	i := s.indexLocked(l)
	if i < 0 {
		s.mu.Unlock()
		return ErrLayerInactive
	}

	from := s.activeLocked()
	copy(s.layers[i:], s.layers[i+1:])
	s.layers[len(s.layers)-1] = nil
	s.layers = s.layers[:len(s.layers)-1]
	to := s.activeLocked()
	callbacks := s.callbacksLocked()
	s.mu.Unlock()

	s.notify(callbacks, from, to)
	return nil
}

// Active returns the top of the stack, or the main layer if it is empty.
func (s *Stack) Active() *Layer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeLocked()
}

// IsActive reports whether l is on the stack.
// The main layer is never on the stack.
func (s *Stack) IsActive(l *Layer) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexLocked(l) >= 0
}

// Depth returns the number of layers on the stack.
func (s *Stack) Depth() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.layers)
}

// Names returns the names of the stacked layers, bottom first.
func (s *Stack) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.layers))
	for i, l := range s.layers {
		names[i] = l.Name()
	}
	return names
}

// OnChange registers cb to be called when the active layer changes.
// The returned function unregisters it.
func (s *Stack) OnChange(cb ChangeCallback) func() {
	if cb == nil {
		return func() {}
	}

	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.callbacks[id] = cb
	s.order = append(s.order, id)
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.callbacks, id)
		for i, v := range s.order {
			if v == id {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
	}
}

func (s *Stack) activeLocked() *Layer {
	if n := len(s.layers); n > 0 {
		return s.layers[n-1]
	}
	return s.main
}

func (s *Stack) indexLocked(l *Layer) int {
	for i, cur := range s.layers {
		if cur == l {
			return i
		}
	}
	return -1
}

// callbacksLocked copies the callbacks so they can be called outside the lock.
func (s *Stack) callbacksLocked() []ChangeCallback {
	callbacks := make([]ChangeCallback, 0, len(s.order))
	for _, id := range s.order {
		callbacks = append(callbacks, s.callbacks[id])
	}
	return callbacks
}

func (s *Stack) notify(callbacks []ChangeCallback, from, to *Layer) {
	if from == to {
		return
	}
	for _, cb := range callbacks {
		cb(from, to)
	}
}
