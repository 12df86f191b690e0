package backend

import "sync"

// hookSlot holds the callback target of a process-wide native hook. OS
// callbacks carry no user context on some platforms, so the trampoline looks
// the current target up here. Only one Listen may own a slot at a time.
type hookSlot[T any] struct {
	mu     sync.RWMutex
	owner  *T
	active bool
}

// acquire installs v as the slot target and returns a release func.
func (s *hookSlot[T]) acquire(v *T) (func(), error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active {
		return nil, ErrHookActive
	}
	s.owner = v
	s.active = true
	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.owner = nil
			s.active = false
			s.mu.Unlock()
		})
	}, nil
}

// get returns the current target, or nil when the slot is free.
func (s *hookSlot[T]) get() *T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.owner
}
