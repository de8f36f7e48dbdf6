// Package syncx provides the synchronization primitives the pipeline needs:
// a lock-guarded value read by snapshot and a non-blocking run permit.
package syncx

import "sync"

// Guard wraps a value behind an RWMutex. Readers take a copy so the lock is
// never held across slow work.
type Guard[T any] struct {
	mu    sync.RWMutex
	value T
}

// NewGuard creates a guarded value.
func NewGuard[T any](initial T) *Guard[T] {
	return &Guard[T]{value: initial}
}

// Snapshot returns a copy of the value (T should be a value type).
func (g *Guard[T]) Snapshot() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.value
}

// Set atomically replaces the value.
func (g *Guard[T]) Set(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.value = v
}

// Update executes fn while holding the write lock.
func (g *Guard[T]) Update(fn func(*T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.value)
}
