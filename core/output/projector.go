package output

import (
	"csv-differ/core/record"
)

// Projection selects 1-based columns from each side of an intersecting key.
// The zero Projection selects whole rows.
type Projection struct {
	Left  []int
	Right []int
}

// IsZero reports whether no columns are selected on either side.
func (p Projection) IsZero() bool {
	return len(p.Left) == 0 && len(p.Right) == 0
}

// ProjectDifference returns the row stored for key. The key must come from
// the index's own key set.
func ProjectDifference(index record.Index, key string) record.Record {
	return index.MustGet(key)
}

// ProjectIntersection builds the output row for a key present in both
// indices: selected left fields then selected right fields, or both full
// rows when p is zero.
func ProjectIntersection(left, right record.Index, key string, p Projection) (record.Record, error) {
	l := left.MustGet(key)
	r := right.MustGet(key)

	if p.IsZero() {
		out := make(record.Record, 0, len(l)+len(r))
		out = append(out, l...)
		return append(out, r...), nil
	}

	out := make(record.Record, 0, len(p.Left)+len(p.Right))
	out, err := selectFields(out, l, p.Left, "left", key)
	if err != nil {
		return nil, err
	}
	return selectFields(out, r, p.Right, "right", key)
}

func selectFields(dst, rec record.Record, positions []int, side, key string) (record.Record, error) {
	for _, pos := range positions {
		v, ok := rec.Field(pos)
		if !ok {
			return nil, &record.RecordError{
				Source: side,
				Key:    key,
				Column: pos,
				Fields: len(rec),
			}
		}
		dst = append(dst, v)
	}
	return dst, nil
}
