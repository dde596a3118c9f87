package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Book represents a single book record stored as one CSV line on disk.
type Book struct {
	Title  string `yaml:"title" json:"title"`
	Author string `yaml:"author,omitempty" json:"author,omitempty"`
	ISBN   string `yaml:"isbn,omitempty" json:"isbn,omitempty"`
	Year   int    `yaml:"year" json:"year"`
}

// Validate applies the structural rules for a record before it is stored.
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return errors.New("title is required")
	}
	return nil
}

// Fields returns the CSV field values in file order: title, author, isbn, year.
func (b Book) Fields() []string {
	return []string{b.Title, b.Author, b.ISBN, strconv.Itoa(b.Year)}
}

// FromFields parses one CSV row into a Book. Rows may carry four fields
// (title, author, isbn, year) or three (title, author, year — older files
// without an ISBN column).
func FromFields(fields []string) (Book, error) {
	var b Book
	switch len(fields) {
	case 4:
		b.Title, b.Author, b.ISBN = fields[0], fields[1], fields[2]
	case 3:
		b.Title, b.Author = fields[0], fields[1]
	default:
		return Book{}, fmt.Errorf("expected 3 or 4 fields, got %d", len(fields))
	}
	year, err := ParseYear(fields[len(fields)-1])
	if err != nil {
		return Book{}, err
	}
	b.Year = year
	if err := b.Validate(); err != nil {
		return Book{}, err
	}
	return b, nil
}

// ParseYear parses a user-supplied publication year. Only base-10 integers
// are accepted; surrounding whitespace is ignored.
func ParseYear(s string) (int, error) {
	y, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid year %q: must be an integer", strings.TrimSpace(s))
	}
	return y, nil
}
