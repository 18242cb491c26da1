package capture

import "github.com/grokkit/grokkit/treemap"

// Walker traverses every stored record exactly once, in ascending id order.
// Obtain one with Store.Walk.
type Walker struct {
	it *treemap.Iterator[Capture]
}

// Walk starts an ascending traversal over the primary index. Starting a new
// walk invalidates any prior Walker on this store, whose Next then reports
// exhaustion. Mutating the store while a Walker is live yields undefined
// traversal results.
func (s *Store) Walk() *Walker {
	return &Walker{it: s.byID.Iter()}
}

// Next returns the next record in ascending id order, or ok=false once the
// traversal is exhausted or invalidated.
func (w *Walker) Next() (Capture, bool) {
	_, c, ok := w.it.Next()
	return c, ok
}
