// Package treemap provides an ordered map keyed on arbitrary byte slices.
//
// # Overview
//
// Map stores values of any type under binary keys and iterates them in
// ascending comparator order. Because keys are plain []byte, one map type
// serves integer keys, string keys, and raw binary keys uniformly; the
// comparator decides the ordering (numeric for encoded integers, lexical
// for strings).
//
// The backing structure is a B-tree (github.com/tidwall/btree) configured
// without internal locking: a Map has a single logical owner and performs no
// synchronization of its own.
//
// # Key Ownership
//
// Put and PutKeep copy the key into map-owned storage, so callers may reuse
// or mutate their key buffers freely after the call. Keys handed out by
// Iterator.Next are views owned by the map and must not be modified.
//
// # Iteration
//
// Iter returns a cursor positioned before the first entry. At most one
// cursor per map is live at a time: starting a new iteration invalidates any
// prior cursor on the same map, whose Next then reports exhaustion. Mutating
// the map while a cursor is live yields undefined traversal results; callers
// must finish or abandon the cursor first.
//
// # Usage
//
//	m := treemap.New[string](treemap.CompareBytes)
//	m.Put([]byte("b"), "two")
//	m.Put([]byte("a"), "one")
//	it := m.Iter()
//	for k, v, ok := it.Next(); ok; k, v, ok = it.Next() {
//		fmt.Printf("%s=%s\n", k, v) // a=one, b=two
//	}
package treemap
