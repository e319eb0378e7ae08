package dock

import "hash/fnv"

// ID identifies a window or a widget. IDs are stable across frames for the
// same string.
//
// Two strings hashing to the same ID silently share state; collisions are
// not detected.
type ID uint64

// NoWindow is the "none" sentinel for hot/active/current window ids.
const NoWindow ID = 0

// HashString returns the FNV-64a hash of s.
func HashString(s string) ID {
	h := fnv.New64a()
	h.Write([]byte(s))
	return ID(h.Sum64())
}
