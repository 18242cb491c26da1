package treemap

import (
	"bytes"

	"github.com/tidwall/btree"

	"github.com/grokkit/grokkit/internal/pack"
)

// Compare orders two keys. It reports a negative value when a sorts before b,
// zero when the keys are equal, and a positive value when a sorts after b.
type Compare func(a, b []byte) int

// CompareBytes orders keys lexically by raw bytes. Suitable for string keys.
func CompareBytes(a, b []byte) int {
	return bytes.Compare(a, b)
}

// CompareInt32 orders fixed-width int32 keys (see pack.Int32Key) numerically.
// Lexical comparison would misorder little-endian encodings and negatives.
func CompareInt32(a, b []byte) int {
	av, bv := pack.ReadInt32(a), pack.ReadInt32(b)
	switch {
	case av < bv:
		return -1
	case av > bv:
		return 1
	}
	return 0
}

// entry is one stored key/value pair. Ordering is by key only.
type entry[V any] struct {
	key []byte
	val V
}

// Map is an ordered map from binary keys to values of type V.
// The zero value is not usable; construct with New.
type Map[V any] struct {
	tr     *btree.BTreeG[entry[V]]
	cursor *Iterator[V] // live cursor, nil when none
}

// New creates an empty map ordered by cmp.
func New[V any](cmp Compare) *Map[V] {
	less := func(a, b entry[V]) bool {
		return cmp(a.key, b.key) < 0
	}
	return &Map[V]{
		tr: btree.NewBTreeGOptions(less, btree.Options{NoLocks: true}),
	}
}

// Put inserts or overwrites the value stored under key. The key is copied
// into map-owned storage; on overwrite the prior value is dropped.
func (m *Map[V]) Put(key []byte, val V) {
	m.tr.Set(entry[V]{key: bytes.Clone(key), val: val})
}

// PutKeep inserts the value only when key is absent. It reports whether the
// insertion happened; when it returns false the stored value is untouched.
func (m *Map[V]) PutKeep(key []byte, val V) bool {
	if _, ok := m.tr.Get(entry[V]{key: key}); ok {
		return false
	}
	m.tr.Set(entry[V]{key: bytes.Clone(key), val: val})
	return true
}

// Get returns the value stored under key, or the zero value and false when
// the key is absent.
func (m *Map[V]) Get(key []byte) (V, bool) {
	e, ok := m.tr.Get(entry[V]{key: key})
	if !ok {
		var zero V
		return zero, false
	}
	return e.val, true
}

// Delete removes the entry stored under key and reports whether it existed.
func (m *Map[V]) Delete(key []byte) bool {
	_, ok := m.tr.Delete(entry[V]{key: key})
	return ok
}

// Len returns the number of stored entries.
func (m *Map[V]) Len() int {
	return m.tr.Len()
}

// Clear removes every entry and invalidates any live cursor.
func (m *Map[V]) Clear() {
	if m.cursor != nil {
		m.cursor.invalidate()
	}
	m.tr.Clear()
}
