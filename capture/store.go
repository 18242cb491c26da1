package capture

import (
	"github.com/grokkit/grokkit/internal/pack"
	"github.com/grokkit/grokkit/seqlist"
	"github.com/grokkit/grokkit/treemap"
)

// bucket holds the records sharing one name or subname, in insertion order
// with at most one entry per id.
type bucket = seqlist.List[Capture]

// Store indexes Capture records four ways: by id (primary), by capture
// number, by name, and by subname. Construct with NewStore.
//
// Each Add stores independent copies in all four indexes; the copies are
// logically the same record but physically distinct, so a caller mutating
// its own Capture after Add never disturbs the store.
type Store struct {
	byID      *treemap.Map[Capture]
	byNumber  *treemap.Map[Capture]
	byName    *treemap.Map[*bucket]
	bySubname *treemap.Map[*bucket]
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		byID:      treemap.New[Capture](treemap.CompareInt32),
		byNumber:  treemap.New[Capture](treemap.CompareInt32),
		byName:    treemap.New[*bucket](treemap.CompareBytes),
		bySubname: treemap.New[*bucket](treemap.CompareBytes),
	}
}

// Add inserts c into all four indexes.
//
// By id and by capture number the insert is an upsert: an existing record
// under the same key is overwritten. In the name and subname buckets an
// existing entry with the same id is removed first, then c is appended at
// the tail, so a bucket never holds two records with one id.
//
// When onlyRenamed is true and c.Name carries no rename separator, the call
// is a complete no-op: no index is touched and no failure is signaled.
func (s *Store) Add(c Capture, onlyRenamed bool) {
	if onlyRenamed && !c.Renamed() {
		return
	}

	s.byID.Put(pack.Int32Key(int32(c.ID)), c)
	s.byNumber.Put(pack.Int32Key(int32(c.Number)), c)
	addToBucket(s.byName, c.Name, c)
	addToBucket(s.bySubname, c.Subname, c)
}

// addToBucket appends c to the bucket stored under key, creating the bucket
// on first use and replacing any earlier entry carrying the same id.
func addToBucket(idx *treemap.Map[*bucket], key string, c Capture) {
	k := pack.StringKey(key)
	b, ok := idx.Get(k)
	if !ok {
		b = seqlist.New[Capture]()
		idx.Put(k, b)
	}
	for i := 0; i < b.Len(); i++ {
		if prior, ok := b.Get(i); ok && prior.ID == c.ID {
			b.Remove(i)
			break
		}
	}
	b.Push(c)
}

// ByID returns the record stored under id.
func (s *Store) ByID(id int) (Capture, bool) {
	return s.byID.Get(pack.Int32Key(int32(id)))
}

// ByNumber returns the record stored under the engine capture number n.
func (s *Store) ByNumber(n int) (Capture, bool) {
	return s.byNumber.Get(pack.Int32Key(int32(n)))
}

// ByName returns the earliest-inserted record whose name is name. Several
// records may share a name; use AllByName to see them all.
func (s *Store) ByName(name string) (Capture, bool) {
	return firstInBucket(s.byName, name)
}

// BySubname returns the earliest-inserted record whose subname is subname.
func (s *Store) BySubname(subname string) (Capture, bool) {
	return firstInBucket(s.bySubname, subname)
}

// AllByName returns every record sharing name, in bucket (insertion) order.
// The slice is a copy; nil when no record has the name.
func (s *Store) AllByName(name string) []Capture {
	return allInBucket(s.byName, name)
}

// AllBySubname returns every record sharing subname, in bucket order.
func (s *Store) AllBySubname(subname string) []Capture {
	return allInBucket(s.bySubname, subname)
}

func firstInBucket(idx *treemap.Map[*bucket], key string) (Capture, bool) {
	b, ok := idx.Get(pack.StringKey(key))
	if !ok {
		return Capture{}, false
	}
	return b.Get(0)
}

func allInBucket(idx *treemap.Map[*bucket], key string) []Capture {
	b, ok := idx.Get(pack.StringKey(key))
	if !ok || b.Len() == 0 {
		return nil
	}
	out := make([]Capture, 0, b.Len())
	for i := 0; i < b.Len(); i++ {
		c, _ := b.Get(i)
		out = append(out, c)
	}
	return out
}

// SetExtra attaches an opaque payload to c by value. Only the handle is
// copied; the caller keeps ownership and lifetime responsibility for
// whatever it refers to. Records already inserted are unaffected, since the
// store holds its own copies.
func (s *Store) SetExtra(c *Capture, extra any) {
	c.Extra = extra
}

// Len returns the number of distinct records, i.e. the size of the primary
// index.
func (s *Store) Len() int {
	return s.byID.Len()
}

// Clear removes every record from all four indexes. The store stays usable.
func (s *Store) Clear() {
	s.byID.Clear()
	s.byNumber.Clear()
	s.byName.Clear()
	s.bySubname.Clear()
}

// Stats reports per-index entry counts.
type Stats struct {
	IDs      int // primary index entries
	Numbers  int // capture-number index entries
	Names    int // distinct names (buckets, not records)
	Subnames int // distinct subnames (buckets, not records)
}

// Stats returns the current per-index entry counts.
func (s *Store) Stats() Stats {
	return Stats{
		IDs:      s.byID.Len(),
		Numbers:  s.byNumber.Len(),
		Names:    s.byName.Len(),
		Subnames: s.bySubname.Len(),
	}
}
