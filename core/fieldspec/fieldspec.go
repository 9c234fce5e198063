package fieldspec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	sideSeparator  = ":"
	fieldSeparator = ","
)

// ErrBadFormat is matched by every error returned from this package.
var ErrBadFormat = errors.New("bad format")

// ParseError describes a rejected specification string.
type ParseError struct {
	// Input is the raw specification as given by the caller.
	Input string
	// Reason says which rule was broken.
	Reason string
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("bad format: %q: %s", e.Input, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is reports ErrBadFormat so callers can test with errors.Is.
func (e *ParseError) Is(target error) bool {
	return target == ErrBadFormat
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FieldSpec is an ordered pair of 1-based column lists, one per input side.
type FieldSpec struct {
	// Left holds the column positions for the first file.
	Left []int
	// Right holds the column positions for the second file.
	Right []int
}

// IsZero reports whether no columns were selected on either side.
func (f FieldSpec) IsZero() bool {
	return len(f.Left) == 0 && len(f.Right) == 0
}

func (f FieldSpec) String() string {
	if f.IsZero() {
		return ""
	}
	return joinInts(f.Left) + sideSeparator + joinInts(f.Right)
}

// Parse converts a specification like "1,2:3,6,9" into a FieldSpec.
func Parse(s string) (FieldSpec, error) {
	segments := strings.Split(s, sideSeparator)
	if len(segments) != 2 {
		return FieldSpec{}, &ParseError{Input: s, Reason: fmt.Sprintf("expected 2 segments separated by %q, got %d", sideSeparator, len(segments))}
	}

	sides := make([][]int, 0, len(segments))
	for i, segment := range segments {
		if strings.TrimSpace(segment) == "" {
			return FieldSpec{}, &ParseError{Input: s, Reason: fmt.Sprintf("segment %d is empty", i+1)}
		}

		positions, err := parseSegment(s, segment)
		if err != nil {
			return FieldSpec{}, err
		}
		sides = append(sides, positions)
	}

	return FieldSpec{Left: sides[0], Right: sides[1]}, nil
}

// ParseKey parses a key specification, which must select exactly one
// column on each side.
func ParseKey(s string) (FieldSpec, error) {
	spec, err := Parse(s)
	if err != nil {
		return FieldSpec{}, err
	}
	if len(spec.Left) != 1 || len(spec.Right) != 1 {
		return FieldSpec{}, &ParseError{Input: s, Reason: "key spec must name exactly one column per side"}
	}
	return spec, nil
}

// ParseOptional parses s, treating an empty or blank string as "no columns
// selected" and returning the zero FieldSpec.
func ParseOptional(s string) (FieldSpec, error) {
	if strings.TrimSpace(s) == "" {
		return FieldSpec{}, nil
	}
	return Parse(s)
}

func parseSegment(input, segment string) ([]int, error) {
	pieces := strings.Split(segment, fieldSeparator)
	positions := make([]int, 0, len(pieces))
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if piece == "" {
			return nil, &ParseError{Input: input, Reason: "empty column position"}
		}

		n, err := strconv.Atoi(piece)
		if err != nil {
			return nil, &ParseError{Input: input, Reason: fmt.Sprintf("column position %q is not a number", piece), Err: err}
		}
		if n < 1 {
			return nil, &ParseError{Input: input, Reason: fmt.Sprintf("column position %d must be >= 1", n)}
		}
		positions = append(positions, n)
	}
	return positions, nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, fieldSeparator)
}
