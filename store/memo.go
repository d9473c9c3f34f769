package store

import "sync"

// memo caches the last computed value keyed by the inputs that produced it.
// Invalidation is trivial: a different key means recompute. One entry is
// enough because inputs are few and long-lived.
type memo[K comparable, V any] struct {
	mu    sync.Mutex
	valid bool
	key   K
	val   V
}

func (m *memo[K, V]) get(key K, compute func() V) V {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.valid && m.key == key {
		return m.val
	}
	m.val = compute()
	m.key = key
	m.valid = true
	return m.val
}
