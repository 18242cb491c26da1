package capture

import "strings"

// NumberUnset marks an id or capture number not yet assigned by the compiler.
const NumberUnset = -1

// RenameSep separates the base name from the subname in a renamed capture,
// as in "SYSLOGBASE:timestamp".
const RenameSep = ":"

// Capture is the metadata record for one named or numbered capture group.
//
// The compiler populates a Capture and hands it to Store.Add; the store
// keeps its own copies, so mutating a Capture after Add does not affect
// stored records.
type Capture struct {
	// ID is the primary key, unique across the compiled pattern set.
	ID int

	// Number is the engine-assigned capture group ordinal. Unique within
	// one compiled pattern, not across patterns.
	Number int

	// Name is the full capture name, possibly containing RenameSep.
	// May be empty.
	Name string

	// Subname is the portion of Name after RenameSep, or empty.
	Subname string

	// Pattern is the sub-pattern text this capture matches.
	Pattern string

	// PredicateLib and PredicateFunc name an optional external validation
	// hook. The store records them without interpretation.
	PredicateLib  string
	PredicateFunc string

	// Extra is an opaque caller-owned payload. The store copies the handle
	// value only and never inspects or releases what it refers to.
	Extra any
}

// NewCapture returns a Capture with id and capture number unset, ready for
// the compiler to populate.
func NewCapture() Capture {
	return Capture{ID: NumberUnset, Number: NumberUnset}
}

// Renamed reports whether the capture carries a rename separator in its
// name (e.g. "FOO:bar").
func (c *Capture) Renamed() bool {
	return strings.Contains(c.Name, RenameSep)
}

// Reset releases the record's owned fields: the strings and the Extra
// handle are dropped so their storage can be reclaimed. ID and Number are
// kept. Reset is idempotent and does not remove the record from any store.
func (c *Capture) Reset() {
	c.Name = ""
	c.Subname = ""
	c.Pattern = ""
	c.PredicateLib = ""
	c.PredicateFunc = ""
	c.Extra = nil
}

// SplitName splits a capture name on the first RenameSep: "FOO:bar" yields
// base "FOO" and subname "bar". When name carries no separator, base is the
// whole name and subname is empty.
func SplitName(name string) (base, subname string) {
	base, subname, _ = strings.Cut(name, RenameSep)
	return base, subname
}
