package observer

import "sync"

// Map is an observable map. Per-key reads are tracked per key; Len and Keys
// track the key set, which changes when keys are added or deleted.
type Map[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
	slots   map[K]*source
	keys    source
	order   []K
}

// NewMap creates an empty Map.
func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make(map[K]V),
		slots:   make(map[K]*source),
	}
}

// slot returns the source for key, creating it so that reads of missing
// keys are notified when the key appears.
func (m *Map[K, V]) slot(key K) *source {
	m.mu.Lock()
	defer m.mu.Unlock()
	src, ok := m.slots[key]
	if !ok {
		src = &source{}
		m.slots[key] = src
	}
	return src
}

// Get returns the value for key and whether it was present.
func (m *Map[K, V]) Get(key K) (V, bool) {
	track(m.slot(key))
	m.mu.RLock()
	defer m.mu.RUnlock()
	value, ok := m.entries[key]
	return value, ok
}

// Set stores value under key.
func (m *Map[K, V]) Set(key K, value V) {
	m.mu.Lock()
	_, existed := m.entries[key]
	m.entries[key] = value
	if !existed {
		m.order = append(m.order, key)
	}
	m.mu.Unlock()

	m.slot(key).notify()
	if !existed {
		m.keys.notify()
	}
}

// Delete removes key. Deleting a missing key does nothing.
func (m *Map[K, V]) Delete(key K) {
	m.mu.Lock()
	if _, ok := m.entries[key]; !ok {
		m.mu.Unlock()
		return
	}
	delete(m.entries, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	m.mu.Unlock()

	m.slot(key).notify()
	m.keys.notify()
}

// Len returns the number of entries and tracks the key set.
func (m *Map[K, V]) Len() int {
	track(&m.keys)
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// Keys returns keys in insertion order and tracks the key set.
func (m *Map[K, V]) Keys() []K {
	track(&m.keys)
	m.mu.RLock()
	defer m.mu.RUnlock()
	keys := make([]K, len(m.order))
	copy(keys, m.order)
	return keys
}
