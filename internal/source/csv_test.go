package source

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marks.csv")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeFile(t, "Name,Marks\nAlice,95\nBob,35.5\n")
	r, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("expected 2 students, got %d", r.Len())
	}
	names := r.Names()
	if names[0] != "Alice" || names[1] != "Bob" {
		t.Fatalf("row order not preserved: %v", names)
	}
	if score, _ := r.Score("Bob"); score != 35.5 {
		t.Fatalf("Score(Bob) = %v, want 35.5", score)
	}
}

func TestReadCSVIgnoresExtraColumns(t *testing.T) {
	path := writeFile(t, "Roll,Name,Marks,Remark\n1,Alice,95,good\n2,Bob,35,poor\n")
	r, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if score, _ := r.Score("Alice"); score != 95 {
		t.Fatalf("Score(Alice) = %v, want 95", score)
	}
}

func TestReadCSVMissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got %v", err)
	}
}

func TestReadCSVMissingColumns(t *testing.T) {
	path := writeFile(t, "Student,Score\nAlice,95\n")
	_, err := ReadCSV(path)
	if err == nil {
		t.Fatal("expected error for missing columns")
	}
	if !strings.Contains(err.Error(), "Marks") {
		t.Fatalf("error should name the missing column: %v", err)
	}
}

func TestReadCSVBadScore(t *testing.T) {
	path := writeFile(t, "Name,Marks\nAlice,95\nBob,ninety\n")
	_, err := ReadCSV(path)
	if err == nil {
		t.Fatal("expected error for non-numeric marks")
	}
	if !strings.Contains(err.Error(), "row 3") {
		t.Fatalf("error should name the bad row: %v", err)
	}
}

func TestReadCSVHeaderOnly(t *testing.T) {
	path := writeFile(t, "Name,Marks\n")
	r, err := ReadCSV(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Len() != 0 {
		t.Fatalf("expected empty roster, got %d students", r.Len())
	}
}
