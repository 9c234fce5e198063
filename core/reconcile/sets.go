package reconcile

import (
	"sort"

	"csv-differ/core/record"
)

// KeySet is the set of keys of one index.
type KeySet map[string]struct{}

// Keys collects the key set of an index.
func Keys(index record.Index) KeySet {
	set := make(KeySet, len(index))
	for key := range index {
		set[key] = struct{}{}
	}
	return set
}

// Has reports whether key is in the set.
func (s KeySet) Has(key string) bool {
	_, ok := s[key]
	return ok
}

// Sorted returns the members in ascending order.
func (s KeySet) Sorted() []string {
	keys := make([]string, 0, len(s))
	for key := range s {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Difference returns the keys of a that are not in b.
func Difference(a, b KeySet) KeySet {
	out := make(KeySet)
	for key := range a {
		if !b.Has(key) {
			out[key] = struct{}{}
		}
	}
	return out
}

// Intersection returns the keys present in both a and b.
func Intersection(a, b KeySet) KeySet {
	// iterate the smaller set
	if len(b) < len(a) {
		a, b = b, a
	}
	out := make(KeySet)
	for key := range a {
		if b.Has(key) {
			out[key] = struct{}{}
		}
	}
	return out
}

// Union returns the keys present in a or b.
func Union(a, b KeySet) KeySet {
	out := make(KeySet, len(a)+len(b))
	for key := range a {
		out[key] = struct{}{}
	}
	for key := range b {
		out[key] = struct{}{}
	}
	return out
}
