package visitor

import "sync"

// Scope guards a value shared by the handlers of a visitor.
//
// The lock is taken for the duration of a single call to [Scope.Do],
// [Scope.Get], or [Scope.Set], never across a subtree visit, so a handler can
// update the scope, visit its children, and update it again.
type Scope[S any] struct {
	mu    sync.Mutex
	value S
}

// NewScope returns a Scope holding value.
func NewScope[S any](value S) *Scope[S] {
	return &Scope[S]{value: value}
}

// Do calls fn with exclusive access to the scoped value.
func (s *Scope[S]) Do(fn func(*S)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fn(&s.value)
}

// Get returns a copy of the scoped value.
func (s *Scope[S]) Get() S {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.value
}

// Set replaces the scoped value.
func (s *Scope[S]) Set(value S) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
}
