// Package capture stores the metadata records a pattern compiler emits for
// named and numbered capture groups, and resolves them back during match
// execution.
//
// # Overview
//
// Compiling a named pattern assigns each capture group an id, an
// engine-assigned capture number, a name, and optionally a subname (the part
// after the rename separator in "SYSLOGBASE:timestamp"). After a match, the
// execution side holds only group numbers and names and needs the rest of
// the record back: the declared name for output formatting, the sub-pattern
// text, or an attached predicate to invoke.
//
// Store keeps every record reachable four ways at once:
//
//   - by id: the primary index, one entry per record, ascending walk order
//   - by capture number: unique per compiled pattern, last writer wins
//   - by name: non-unique, a bucket of records sharing the name
//   - by subname: non-unique, same bucket scheme
//
// The name and subname buckets deduplicate by id: re-adding a record whose
// id is already in the bucket replaces it (removed, then re-appended at the
// tail) instead of appending a duplicate. ByName and BySubname return the
// earliest-inserted survivor in the bucket, which is not necessarily the
// record with the lowest id.
//
// # Concurrency
//
// A Store has one logical owner and performs no locking. Operations are
// synchronous and complete before returning. Mutating the store while a
// Walker is live yields undefined traversal results.
//
// # Usage
//
//	s := capture.NewStore()
//	c := capture.NewCapture()
//	c.ID, c.Number = 1, 1
//	c.Name, c.Subname = "SYSLOGBASE:stamp", "stamp"
//	c.Pattern = `%{MONTH} +%{MONTHDAY} %{TIME}`
//	s.Add(c, false)
//
//	if got, ok := s.ByName("SYSLOGBASE:stamp"); ok {
//		fmt.Println(got.Pattern)
//	}
package capture
