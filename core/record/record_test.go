package record_test

import (
	"testing"

	"csv-differ/core/record"

	"github.com/stretchr/testify/assert"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		delim string
		want  record.Record
	}{
		{"TrimsNewline", "1,foo\n", ",", record.Record{"1", "foo"}},
		{"TrimsCRLF", "1,foo\r\n", ",", record.Record{"1", "foo"}},
		{"KeepsEmptyFields", "a,,c", ",", record.Record{"a", "", "c"}},
		{"NoQuoting", `"a,b",c`, ",", record.Record{`"a`, `b"`, "c"}},
		{"OtherDelimiter", "a|b", "|", record.Record{"a", "b"}},
		{"Empty", "", ",", record.Record{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, record.Split(tt.line, tt.delim))
		})
	}
}

func TestRecord_Field(t *testing.T) {
	r := record.Record{"k", "x", "y"}

	v, ok := r.Field(1)
	assert.True(t, ok)
	assert.Equal(t, "k", v)

	v, ok = r.Field(3)
	assert.True(t, ok)
	assert.Equal(t, "y", v)

	_, ok = r.Field(0)
	assert.False(t, ok)

	_, ok = r.Field(4)
	assert.False(t, ok)
}

func TestRecord_Join(t *testing.T) {
	assert.Equal(t, "k,x,y", record.Record{"k", "x", "y"}.Join(","))
	assert.Equal(t, "", record.Record{}.Join(","))
}

func TestRecordError_Error(t *testing.T) {
	err := &record.RecordError{Source: "a.csv", Line: 3, Column: 4, Fields: 2}
	assert.Equal(t, "record error: a.csv line 3: column 4 out of range (row has 2 fields)", err.Error())

	err = &record.RecordError{Source: "left", Key: "k1", Column: 9, Fields: 3}
	assert.Equal(t, `record error: left key "k1": column 9 out of range (row has 3 fields)`, err.Error())
}

func TestDuplicateKeyError_Error(t *testing.T) {
	err := &record.DuplicateKeyError{Source: "a.csv", Key: "7", Line: 5, FirstLine: 2}
	assert.Equal(t, `duplicate key "7" in a.csv: line 5 repeats line 2`, err.Error())
}

func TestIndex_Keys(t *testing.T) {
	idx := record.Index{
		"b": {"b", "2"},
		"a": {"a", "1"},
		"c": {"c", "3"},
	}
	assert.Equal(t, []string{"a", "b", "c"}, idx.Keys())
	assert.Empty(t, record.Index{}.Keys())
}

func TestIndex_MustGet(t *testing.T) {
	idx := record.Index{"a": {"a", "1"}}
	assert.Equal(t, record.Record{"a", "1"}, idx.MustGet("a"))
	assert.Panics(t, func() { idx.MustGet("zzz") })
}
