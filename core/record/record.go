// Package record holds the row type shared by the loader, reconciler and
// output projector, together with the errors raised when a row cannot be
// addressed the way the caller asked.
package record

import (
	"fmt"
	"strings"
)

// Record is one input line split on the delimiter.
type Record []string

// Split breaks a line into a Record. The line is trimmed of surrounding
// whitespace first; no quoting rules apply.
func Split(line, delim string) Record {
	return strings.Split(strings.TrimSpace(line), delim)
}

// Field returns the value at the 1-based position pos.
func (r Record) Field(pos int) (string, bool) {
	if pos < 1 || pos > len(r) {
		return "", false
	}
	return r[pos-1], true
}

// Join renders the Record as a single delimited line without a terminator.
func (r Record) Join(delim string) string {
	return strings.Join(r, delim)
}

// RecordError reports a row that has no field at a requested position.
type RecordError struct {
	// Source names the input the row came from.
	Source string
	// Line is the 1-based line number within Source, or 0 when unknown.
	Line int
	// Key is the row's key, when already known.
	Key string
	// Column is the 1-based position that was requested.
	Column int
	// Fields is the number of fields the row actually has.
	Fields int
}

func (e *RecordError) Error() string {
	var b strings.Builder
	b.WriteString("record error")
	if e.Source != "" {
		fmt.Fprintf(&b, ": %s", e.Source)
	}
	if e.Line > 0 {
		fmt.Fprintf(&b, " line %d", e.Line)
	}
	if e.Key != "" {
		fmt.Fprintf(&b, " key %q", e.Key)
	}
	fmt.Fprintf(&b, ": column %d out of range (row has %d fields)", e.Column, e.Fields)
	return b.String()
}

// DuplicateKeyError is returned when the loader runs with the reject
// policy and meets a key for the second time.
type DuplicateKeyError struct {
	Source    string
	Key       string
	Line      int
	FirstLine int
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key %q in %s: line %d repeats line %d", e.Key, e.Source, e.Line, e.FirstLine)
}
