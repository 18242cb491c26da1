// Package seqlist provides a small append-ordered sequence that permits
// duplicates. It backs the non-unique index buckets in package capture,
// where several records may legitimately share one key. Out-of-range
// access is signaled with an ok bool, never a panic.
package seqlist

// List is an append-ordered sequence of values. The zero value is not
// usable; construct with New. Lists are expected to stay small (a handful
// of records per bucket), so linear operations are fine.
type List[T any] struct {
	items []T
}

// New creates an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Push appends v at the tail.
func (l *List[T]) Push(v T) {
	l.items = append(l.items, v)
}

// Get returns the element at index i, or the zero value and false when i is
// out of range.
func (l *List[T]) Get(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	return l.items[i], true
}

// Set overwrites the element at index i. Out-of-range indexes are ignored.
func (l *List[T]) Set(i int, v T) {
	if i < 0 || i >= len(l.items) {
		return
	}
	l.items[i] = v
}

// Remove unlinks and returns the element at index i, shifting the logical
// index of every later element down by one. It returns the zero value and
// false when i is out of range.
func (l *List[T]) Remove(i int) (T, bool) {
	if i < 0 || i >= len(l.items) {
		var zero T
		return zero, false
	}
	v := l.items[i]
	l.items = append(l.items[:i], l.items[i+1:]...)
	return v, true
}

// Len returns the number of elements. A nil list has length 0.
func (l *List[T]) Len() int {
	if l == nil {
		return 0
	}
	return len(l.items)
}
