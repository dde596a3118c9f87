package store

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/natefinch/atomic"

	"bookdb/src/internal/record"
)

// LoadWarning describes one line that was skipped while loading the backing
// file. Line numbers are 1-based.
type LoadWarning struct {
	Line int
	Raw  string
	Err  error
}

func (w LoadWarning) String() string {
	if w.Raw == "" {
		return fmt.Sprintf("line %d: %v", w.Line, w.Err)
	}
	return fmt.Sprintf("line %d: %v (was: %s)", w.Line, w.Err, w.Raw)
}

// Store holds the ordered book records mirrored to a single CSV file.
// Records stay in insertion order; sorting is presentation-only and the
// persisted file always reflects insertion order.
type Store struct {
	path  string
	books []record.Book
	dirty bool
}

// Open loads the store from path. A nonexistent file yields an empty store.
// Lines that fail to parse are skipped and reported as warnings rather than
// aborting the load.
func Open(path string) (*Store, []LoadWarning, error) {
	s := &Store{path: path}
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil, nil
	}
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()
	if info, statErr := f.Stat(); statErr == nil && info.IsDir() {
		return nil, nil, fmt.Errorf("%s is a directory, not a data file", path)
	}
	books, warnings, err := decode(f)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", path, err)
	}
	s.books = books
	return s, warnings, nil
}

// decode reads CSV rows one at a time so a malformed row only loses itself,
// not the rest of the file.
func decode(r io.Reader) ([]record.Book, []LoadWarning, error) {
	var books []record.Book
	var warnings []LoadWarning
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	for {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return books, warnings, nil
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				warnings = append(warnings, LoadWarning{Line: perr.Line, Err: perr.Err})
				continue
			}
			return nil, nil, err
		}
		line, _ := cr.FieldPos(0)
		b, err := record.FromFields(fields)
		if err != nil {
			warnings = append(warnings, LoadWarning{Line: line, Raw: strings.Join(fields, ","), Err: err})
			continue
		}
		books = append(books, b)
	}
}

// Path returns the backing file path.
func (s *Store) Path() string { return s.path }

// Len returns the number of records currently held.
func (s *Store) Len() int { return len(s.books) }

// Books returns a copy of the records in insertion order.
func (s *Store) Books() []record.Book {
	out := make([]record.Book, len(s.books))
	copy(out, s.books)
	return out
}

// Add validates the book, appends it, and persists the whole store. A failed
// validation or write leaves the in-memory sequence unchanged.
func (s *Store) Add(b record.Book) error {
	if err := b.Validate(); err != nil {
		return err
	}
	s.books = append(s.books, b)
	s.dirty = true
	if err := s.Persist(); err != nil {
		s.books = s.books[:len(s.books)-1]
		return err
	}
	return nil
}

// SortedByYear returns the records ordered ascending by publication year.
// Ties keep insertion order. The receiver is not modified.
func (s *Store) SortedByYear() []record.Book {
	out := s.Books()
	sort.SliceStable(out, func(i, j int) bool { return out[i].Year < out[j].Year })
	return out
}

// Dirty reports whether in-memory state has diverged from the file.
func (s *Store) Dirty() bool { return s.dirty }

// Persist atomically rewrites the backing file with every record in
// insertion order.
func (s *Store) Persist() error {
	var buf bytes.Buffer
	cw := csv.NewWriter(&buf)
	for _, b := range s.books {
		if err := cw.Write(b.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	if err := atomic.WriteFile(s.path, &buf); err != nil {
		return fmt.Errorf("writing %s: %w", s.path, err)
	}
	s.dirty = false
	return nil
}
