package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kunalsingh-dev/gradebook/internal/roster"
	"github.com/kunalsingh-dev/gradebook/internal/source"
)

func TestWriteCSV(t *testing.T) {
	r := roster.New()
	r.Set("Alice", 95)
	r.Set("Bob", 55)

	path := filepath.Join(t.TempDir(), "results.csv")
	written, err := WriteCSV(path, r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != path {
		t.Fatalf("written path = %q, want %q", written, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	want := "Name,Marks,Grade\nAlice,95,A\nBob,55,F\n"
	if string(data) != want {
		t.Fatalf("unexpected export content:\n%q\nwant:\n%q", data, want)
	}
}

func TestWriteCSVRoundTrip(t *testing.T) {
	r := roster.New()
	r.Set("Alice", 95)
	r.Set("Bob", 55.25)

	path := filepath.Join(t.TempDir(), "results.csv")
	if _, err := WriteCSV(path, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back, err := source.ReadCSV(path)
	if err != nil {
		t.Fatalf("failed to re-import export: %v", err)
	}
	if back.Len() != r.Len() {
		t.Fatalf("re-import has %d students, want %d", back.Len(), r.Len())
	}
	for i, name := range r.Names() {
		if back.Names()[i] != name {
			t.Fatalf("name %d = %s, want %s", i, back.Names()[i], name)
		}
		original, _ := r.Score(name)
		reread, _ := back.Score(name)
		if reread != original {
			t.Fatalf("score for %s = %v, want %v", name, reread, original)
		}
	}
}

func TestWriteCSVDefaultFilename(t *testing.T) {
	t.Chdir(t.TempDir())
	r := roster.New()
	r.Set("Alice", 95)

	written, err := WriteCSV("", r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if written != DefaultFilename {
		t.Fatalf("written path = %q, want %q", written, DefaultFilename)
	}
	if _, err := os.Stat(DefaultFilename); err != nil {
		t.Fatalf("default export missing: %v", err)
	}
}

func TestWriteCSVOverwritesExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "results.csv")
	if err := os.WriteFile(path, []byte("stale"), 0o644); err != nil {
		t.Fatalf("failed to seed file: %v", err)
	}
	r := roster.New()
	r.Set("Alice", 95)
	if _, err := WriteCSV(path, r); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read export: %v", err)
	}
	if string(data) != "Name,Marks,Grade\nAlice,95,A\n" {
		t.Fatalf("existing file not replaced: %q", data)
	}
}
