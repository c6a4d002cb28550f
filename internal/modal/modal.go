// Package modal tracks dialog visibility and payloads. Closing a dialog hides
// it at once but keeps its payload around for a short cleanup delay so a
// closing animation can still render it.
package modal

import (
	"context"
	"sync"
	"time"

	"github.com/creamcroissant/adminboard/internal/cache"
)

// DefaultCleanupDelay is how long a closed modal keeps its payload.
const DefaultCleanupDelay = 300 * time.Millisecond

const dataKey = "data"

// Modal is a single dialog carrying a payload of type T.
type Modal[T any] struct {
	mu           sync.Mutex
	open         bool
	store        cache.Store
	cleanupDelay time.Duration
}

// New returns a closed modal whose payload lives in store.
func New[T any](store cache.Store, cleanupDelay time.Duration) *Modal[T] {
	if cleanupDelay <= 0 {
		cleanupDelay = DefaultCleanupDelay
	}
	return &Modal[T]{store: store, cleanupDelay: cleanupDelay}
}

// Open shows the modal with payload.
func (m *Modal[T]) Open(payload T) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.store.Set(context.Background(), dataKey, payload, cache.NoExpiration)
	m.open = true
}

// Close hides the modal. The payload is dropped after the cleanup delay.
func (m *Modal[T]) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.open = false
	m.store.Expire(context.Background(), dataKey, m.cleanupDelay)
}

// IsOpen reports whether the modal is visible.
func (m *Modal[T]) IsOpen() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.open
}

// Data returns the payload, if it has not been cleaned up yet.
func (m *Modal[T]) Data() (T, bool) {
	raw, ok := m.store.Get(context.Background(), dataKey)
	if !ok {
		var zero T
		return zero, false
	}
	v, ok := raw.(T)
	return v, ok
}
