// Package fieldspec parses the compact two-sided column specifications used
// to pick key columns and output columns from a pair of delimited files.
//
// # Format
//
// A specification has exactly two segments separated by a colon. The left
// segment addresses the first file and the right segment addresses the
// second. Each segment is a comma separated list of 1-based column positions:
//
//	"1:1"        key column 1 in both files
//	"1,2:3,6,9"  columns 1,2 of the first file and 3,6,9 of the second
//
// Parsing is all-or-nothing. The first malformed segment or piece aborts the
// parse and nothing is returned besides the error.
//
// # Usage
//
//	key, err := fieldspec.ParseKey("1:3")
//	out, err := fieldspec.ParseOptional(os.Args[4])
package fieldspec
