// Package orderedmap provides a map that remembers insertion order.
// Element attributes live in one of these: lookups are by key, but
// serialization and indexed access walk the keys in the order the
// document (or the caller) introduced them.
package orderedmap

import "iter"

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0),
		keys:    make(map[K]V),
	}
}

// Set stores value under key. Setting an existing key overwrites its
// value and keeps the key's original position, matching map-assignment
// semantics.
func (m *Map[K, V]) Set(key K, value V) {
	if _, exists := m.keys[key]; !exists {
		m.entries = append(m.entries, key)
	}
	m.keys[key] = value
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// At returns the i-th key/value pair in insertion order.
func (m *Map[K, V]) At(i int) (K, V, bool) {
	if i < 0 || i >= len(m.entries) {
		var zk K
		var zv V
		return zk, zv, false
	}
	k := m.entries[i]
	return k, m.keys[k], true
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			if !yield(k, m.keys[k]) {
				break
			}
		}
	}
}

// Clone returns an independent copy of the map.
func (m *Map[K, V]) Clone() *Map[K, V] {
	c := &Map[K, V]{
		entries: make([]K, len(m.entries)),
		keys:    make(map[K]V, len(m.keys)),
	}
	copy(c.entries, m.entries)
	for k, v := range m.keys {
		c.keys[k] = v
	}
	return c
}
