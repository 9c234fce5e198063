package reconcile

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func set(keys ...string) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

func TestDifference(t *testing.T) {
	a := set("1", "2", "3")
	b := set("2", "4")

	assert.Equal(t, set("1", "3"), Difference(a, b))
	assert.Equal(t, set("4"), Difference(b, a))
	assert.Equal(t, set(), Difference(a, a))
	assert.Equal(t, a, Difference(a, set()))
}

func TestIntersection(t *testing.T) {
	a := set("1", "2", "3")
	b := set("2", "3", "4", "5", "6")

	assert.Equal(t, set("2", "3"), Intersection(a, b))
	assert.Equal(t, Intersection(a, b), Intersection(b, a))
	assert.Equal(t, set(), Intersection(a, set()))
}

func TestUnion(t *testing.T) {
	assert.Equal(t, set("1", "2", "3"), Union(set("1", "2"), set("2", "3")))
}

func TestKeys(t *testing.T) {
	ks := Keys(indexOf("b", "a"))
	assert.Equal(t, set("a", "b"), ks)
	assert.Equal(t, []string{"a", "b"}, ks.Sorted())
	assert.True(t, ks.Has("a"))
	assert.False(t, ks.Has("c"))
}
