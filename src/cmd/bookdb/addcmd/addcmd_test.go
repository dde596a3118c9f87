package addcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execAdd(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	cmd := New()
	buf := new(bytes.Buffer)
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestAddWithFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	out, err := execAdd(t, "", path,
		"--title", "Dune", "--author", "Herbert", "--isbn", "9780441013593", "--year", "1965")
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "wrote "+path) {
		t.Fatalf("missing confirmation, got: %s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "Dune,Herbert,9780441013593,1965\n" {
		t.Fatalf("unexpected file content: %s", data)
	}
}

func TestAddPromptsForMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	out, err := execAdd(t, "1984\nOrwell\n\n1949\n", path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "Title (required): ") {
		t.Fatalf("missing title prompt, got: %s", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "1984,Orwell,,1949\n" {
		t.Fatalf("unexpected file content: %s", data)
	}
}

func TestAddAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	if err := os.WriteFile(path, []byte("Dune,Herbert,,1965\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	if _, err := execAdd(t, "", path, "--title", "1984", "--author", "Orwell", "--year", "1949"); err != nil {
		t.Fatalf("execute: %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "Dune,Herbert,,1965\n1984,Orwell,,1949\n" {
		t.Fatalf("unexpected file content: %s", data)
	}
}

func TestAddRejectsBadYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	if _, err := execAdd(t, "", path, "--title", "Dune", "--year", "sixty-five"); err == nil {
		t.Fatalf("expected error for non-integer year")
	}
	if _, statErr := os.Stat(path); !os.IsNotExist(statErr) {
		t.Fatalf("rejected add must not create the file")
	}
}

func TestAddRejectsEmptyTitle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	if _, err := execAdd(t, "\n", path, "--year", "1999"); err == nil {
		t.Fatalf("expected error for empty title")
	}
}
