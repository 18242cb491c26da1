// Package pack encodes index keys as byte slices.
//
// Every index in this module is keyed on raw bytes so that one ordered-map
// implementation can serve integer keys, string keys, and arbitrary binary
// keys alike. Integer keys use a fixed 4-byte little-endian encoding and are
// compared numerically by the map's comparator, never lexically.
package pack

import "encoding/binary"

// Int32KeySize is the encoded width of an int32 key.
const Int32KeySize = 4

// Int32Key encodes v as a fixed-width little-endian key.
func Int32Key(v int32) []byte {
	b := make([]byte, Int32KeySize)
	binary.LittleEndian.PutUint32(b, uint32(v))
	return b
}

// ReadInt32 decodes a key produced by Int32Key. Returns 0 when b is too short.
func ReadInt32(b []byte) int32 {
	if len(b) < Int32KeySize {
		return 0
	}
	return int32(binary.LittleEndian.Uint32(b))
}

// StringKey encodes s as a key. The empty string is a valid (empty) key.
func StringKey(s string) []byte {
	return []byte(s)
}
