package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drainIDs runs the walker to exhaustion and returns the visited ids.
func drainIDs(w *Walker) []int {
	var ids []int
	for c, ok := w.Next(); ok; c, ok = w.Next() {
		ids = append(ids, c.ID)
	}
	return ids
}

func Test_Walk_AscendingIDOrder(t *testing.T) {
	s := NewStore()
	for _, id := range []int{5, 1, 9, 3} {
		s.Add(rec(id, id+100, "NAME"), false)
	}

	assert.Equal(t, []int{1, 3, 5, 9}, drainIDs(s.Walk()))
}

func Test_Walk_VisitsEachIDOnce(t *testing.T) {
	s := NewStore()
	s.Add(rec(1, 10, "A"), false)
	s.Add(rec(2, 11, "A"), false)
	s.Add(rec(1, 10, "A"), false) // re-add must not duplicate

	assert.Equal(t, []int{1, 2}, drainIDs(s.Walk()))
}

func Test_Walk_Restartable(t *testing.T) {
	s := NewStore()
	s.Add(rec(2, 11, "B"), false)
	s.Add(rec(1, 10, "A"), false)

	first := drainIDs(s.Walk())
	second := drainIDs(s.Walk())
	assert.Equal(t, first, second, "a fresh walk must replay the full set")
}

func Test_Walk_NewWalkInvalidatesPrior(t *testing.T) {
	s := NewStore()
	s.Add(rec(1, 10, "A"), false)
	s.Add(rec(2, 11, "B"), false)

	old := s.Walk()
	_, ok := old.Next()
	require.True(t, ok)

	fresh := s.Walk()
	_, ok = old.Next()
	assert.False(t, ok, "starting a new walk must invalidate the prior one")
	assert.Len(t, drainIDs(fresh), 2)
}

func Test_Walk_Empty(t *testing.T) {
	s := NewStore()
	_, ok := s.Walk().Next()
	assert.False(t, ok)
}

func Test_Walk_ExhaustedStaysExhausted(t *testing.T) {
	s := NewStore()
	s.Add(rec(1, 10, "A"), false)

	w := s.Walk()
	_, ok := w.Next()
	require.True(t, ok)
	_, ok = w.Next()
	require.False(t, ok)
	_, ok = w.Next()
	assert.False(t, ok, "Next after exhaustion must keep reporting false")
}
