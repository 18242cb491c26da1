package treemap

import "github.com/tidwall/btree"

// Iterator is an ascending cursor over a Map. Obtain one with Map.Iter.
//
// An Iterator becomes invalid when the map starts a newer iteration, when
// the map is cleared, or when it is exhausted; an invalid Iterator's Next
// reports false forever.
type Iterator[V any] struct {
	m       *Map[V]
	it      btree.IterG[entry[V]]
	started bool
	valid   bool
}

// Iter returns a cursor positioned before the first entry in ascending key
// order. Any prior live cursor on this map is invalidated and discarded.
func (m *Map[V]) Iter() *Iterator[V] {
	if m.cursor != nil {
		m.cursor.invalidate()
	}
	it := &Iterator[V]{m: m, it: m.tr.Iter(), valid: true}
	m.cursor = it
	return it
}

// Next advances the cursor and returns the next key/value pair. It returns
// ok=false once the sequence is exhausted or the cursor was invalidated.
// The returned key is owned by the map and must not be modified.
func (it *Iterator[V]) Next() ([]byte, V, bool) {
	var zero V
	if !it.valid {
		return nil, zero, false
	}
	var ok bool
	if !it.started {
		it.started = true
		ok = it.it.First()
	} else {
		ok = it.it.Next()
	}
	if !ok {
		it.invalidate()
		return nil, zero, false
	}
	e := it.it.Item()
	return e.key, e.val, true
}

// invalidate releases the underlying tree iterator and detaches the cursor
// from its map. Idempotent.
func (it *Iterator[V]) invalidate() {
	if !it.valid {
		return
	}
	it.valid = false
	it.it.Release()
	if it.m.cursor == it {
		it.m.cursor = nil
	}
}
