package output

import (
	"errors"
	"path/filepath"

	"csv-differ/core/record"
)

// Default destination names.
const (
	DefaultLeftName      = "a-b.csv"
	DefaultRightName     = "b-a.csv"
	DefaultIntersectName = "intersect.csv"
)

// Paths names the three destinations of a run.
type Paths struct {
	// Left receives rows whose key exists only in the first input.
	Left string
	// Right receives rows whose key exists only in the second input.
	Right string
	// Intersect receives joined rows for keys in both inputs.
	Intersect string
}

// DefaultPaths returns the default destination names inside dir.
func DefaultPaths(dir string) Paths {
	return Paths{
		Left:      filepath.Join(dir, DefaultLeftName),
		Right:     filepath.Join(dir, DefaultRightName),
		Intersect: filepath.Join(dir, DefaultIntersectName),
	}
}

// Set holds the writers of one run.
type Set struct {
	Left      Writer
	Right     Writer
	Intersect Writer
}

// OpenSet opens a writer for every destination. If any open fails the
// writers opened so far are aborted.
func OpenSet(paths Paths, delim string, mode Mode) (*Set, error) {
	var opened []Writer
	open := func(path string) (Writer, error) {
		w, err := Open(path, delim, mode)
		if err != nil {
			for _, o := range opened {
				_ = o.Abort()
			}
			return nil, err
		}
		opened = append(opened, w)
		return w, nil
	}

	left, err := open(paths.Left)
	if err != nil {
		return nil, err
	}
	right, err := open(paths.Right)
	if err != nil {
		return nil, err
	}
	intersect, err := open(paths.Intersect)
	if err != nil {
		return nil, err
	}
	return &Set{Left: left, Right: right, Intersect: intersect}, nil
}

func (s *Set) writers() []Writer {
	return []Writer{s.Left, s.Right, s.Intersect}
}

// preparer is implemented by writers that can flush ahead of Commit.
type preparer interface {
	prepare() error
}

// Commit commits every writer in order. Atomic writers are all flushed
// before the first rename so a flush failure leaves every destination
// untouched. After the first failure the remaining writers are aborted.
func (s *Set) Commit() error {
	for _, w := range s.writers() {
		if p, ok := w.(preparer); ok {
			if err := p.prepare(); err != nil {
				_ = s.Abort()
				return err
			}
		}
	}
	for i, w := range s.writers() {
		if err := w.Commit(); err != nil {
			for _, rest := range s.writers()[i+1:] {
				_ = rest.Abort()
			}
			return err
		}
	}
	return nil
}

// Abort aborts every writer and joins their errors.
func (s *Set) Abort() error {
	var errs []error
	for _, w := range s.writers() {
		errs = append(errs, w.Abort())
	}
	return errors.Join(errs...)
}

// EmitDifference writes the full row of every key to w.
func EmitDifference(w Writer, index record.Index, keys []string) error {
	for _, key := range keys {
		if err := w.Write(ProjectDifference(index, key)); err != nil {
			return err
		}
	}
	return nil
}

// EmitIntersection writes the projected row of every key to w.
func EmitIntersection(w Writer, left, right record.Index, keys []string, p Projection) error {
	for _, key := range keys {
		rec, err := ProjectIntersection(left, right, key, p)
		if err != nil {
			return err
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}
