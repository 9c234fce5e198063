package record

import "sort"

// Index maps a key column value to the full row it was read from.
// It is built once per input and only read afterwards.
type Index map[string]Record

// Keys returns the index keys in ascending order.
func (i Index) Keys() []string {
	keys := make([]string, 0, len(i))
	for k := range i {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MustGet returns the row for key. A miss means the caller passed a key
// that did not come from this index, which is a programming error.
func (i Index) MustGet(key string) Record {
	rec, ok := i[key]
	if !ok {
		panic("record: key " + key + " not present in index")
	}
	return rec
}
