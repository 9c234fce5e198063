package output

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"csv-differ/core/record"

	"github.com/google/uuid"
)

// Writer receives output rows for one destination.
type Writer interface {
	// Write appends one row followed by a newline.
	Write(rec record.Record) error
	// Lines returns the number of rows written so far.
	Lines() int
	// Path returns the final destination path.
	Path() string
	// Commit flushes and makes the rows visible at Path.
	Commit() error
	// Abort releases the writer; see the package docs for what stays on disk.
	Abort() error
}

// Mode selects how destinations are written.
type Mode int

const (
	// Append writes directly into the destination.
	Append Mode = iota
	// Atomic writes into a temporary copy renamed on commit.
	Atomic
)

func (m Mode) String() string {
	if m == Atomic {
		return "atomic"
	}
	return "append"
}

const filePerm = 0o644

// Open returns a Writer for path in the given mode.
func Open(path, delim string, mode Mode) (Writer, error) {
	if mode == Atomic {
		w, err := openAtomic(path, delim)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
	w, err := openAppend(path, delim)
	if err != nil {
		return nil, err
	}
	return w, nil
}

type fileWriter struct {
	path  string
	delim string
	f     *os.File
	buf   *bufio.Writer
	lines int
	done  bool
}

func (w *fileWriter) Write(rec record.Record) error {
	if w.done {
		return fmt.Errorf("write to %s after close", w.path)
	}
	if _, err := w.buf.WriteString(rec.Join(w.delim)); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	if err := w.buf.WriteByte('\n'); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	w.lines++
	return nil
}

func (w *fileWriter) Lines() int {
	return w.lines
}

func (w *fileWriter) Path() string {
	return w.path
}

func (w *fileWriter) flushClose() error {
	if w.done {
		return nil
	}
	w.done = true
	flushErr := w.buf.Flush()
	closeErr := w.f.Close()
	return errors.Join(flushErr, closeErr)
}

type appendWriter struct {
	fileWriter
}

func openAppend(path, delim string) (*appendWriter, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open output %s: %w", path, err)
	}
	return &appendWriter{fileWriter{path: path, delim: delim, f: f, buf: bufio.NewWriter(f)}}, nil
}

func (w *appendWriter) Commit() error {
	if err := w.flushClose(); err != nil {
		return fmt.Errorf("failed to flush output %s: %w", w.path, err)
	}
	return nil
}

// Abort flushes what was buffered; partial output stays at the destination.
func (w *appendWriter) Abort() error {
	return w.flushClose()
}

type atomicWriter struct {
	fileWriter
	tmpPath  string
	prepared bool
}

func openAtomic(path, delim string) (*atomicWriter, error) {
	dir, name := filepath.Split(path)
	tmpPath := filepath.Join(dir, "."+name+"."+uuid.NewString()+".tmp")

	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, filePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to create temporary output for %s: %w", path, err)
	}

	// seed with the current destination so commits accumulate like appends
	if err := copyExisting(f, path); err != nil {
		_ = f.Close()
		_ = os.Remove(tmpPath)
		return nil, err
	}

	return &atomicWriter{
		fileWriter: fileWriter{path: path, delim: delim, f: f, buf: bufio.NewWriter(f)},
		tmpPath:    tmpPath,
	}, nil
}

func copyExisting(dst io.Writer, path string) error {
	src, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read existing output %s: %w", path, err)
	}
	defer src.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return fmt.Errorf("failed to copy existing output %s: %w", path, err)
	}
	return nil
}

// prepare flushes and syncs the temporary file so that Commit only has to
// rename it.
func (w *atomicWriter) prepare() error {
	if w.prepared {
		return nil
	}
	if w.done {
		return fmt.Errorf("commit of %s after close", w.path)
	}
	err := w.buf.Flush()
	if err == nil {
		err = w.f.Sync()
	}
	if err = errors.Join(err, w.flushClose()); err != nil {
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("failed to flush output %s: %w", w.path, err)
	}
	w.prepared = true
	return nil
}

func (w *atomicWriter) Commit() error {
	if err := w.prepare(); err != nil {
		return err
	}
	if err := os.Rename(w.tmpPath, w.path); err != nil {
		_ = os.Remove(w.tmpPath)
		return fmt.Errorf("failed to move output into place %s: %w", w.path, err)
	}
	return nil
}

// Abort discards the temporary file; the destination is left untouched.
func (w *atomicWriter) Abort() error {
	closeErr := w.flushClose()
	removeErr := os.Remove(w.tmpPath)
	if errors.Is(removeErr, os.ErrNotExist) {
		removeErr = nil
	}
	return errors.Join(closeErr, removeErr)
}
