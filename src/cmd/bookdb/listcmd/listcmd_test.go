package listcmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execList(t *testing.T, path string) (string, string, error) {
	t.Helper()
	cmd := New()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs([]string{path})
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestListSortsAscendingByYear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	content := "Dune,Herbert,,1965\n1984,Orwell,,1949\nHyperion,Simmons,,1989\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, _, err := execList(t, path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	i84, iDune, iHyp := strings.Index(out, "1984"), strings.Index(out, "Dune"), strings.Index(out, "Hyperion")
	if !(i84 < iDune && iDune < iHyp) {
		t.Fatalf("rows not in year order:\n%s", out)
	}
}

func TestListMissingFilePrintsEmptyTable(t *testing.T) {
	out, _, err := execList(t, filepath.Join(t.TempDir(), "absent.csv"))
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(out, "TITLE") {
		t.Fatalf("expected header on empty store, got: %s", out)
	}
}

func TestListWarnsOnMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "books.csv")
	if err := os.WriteFile(path, []byte("Dune,Herbert,,1965\nbroken-line\n"), 0o644); err != nil {
		t.Fatalf("seed: %v", err)
	}
	out, errOut, err := execList(t, path)
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if !strings.Contains(errOut, "Skipped 1 malformed line(s)") {
		t.Fatalf("missing warning, stderr: %s", errOut)
	}
	if !strings.Contains(out, "Dune") {
		t.Fatalf("good line missing from output: %s", out)
	}
}
