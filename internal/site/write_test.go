package site

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.html")

	if err := WriteFile(path, "<html>first</html>"); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	// A second run fully replaces the previous page.
	if err := WriteFile(path, "<html>second</html>"); err != nil {
		t.Fatalf("WriteFile overwrite failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	if string(data) != "<html>second</html>" {
		t.Errorf("output = %q, want the overwritten content", string(data))
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "missing", "roster.html"), "x")
	if err == nil {
		t.Fatal("expected error writing into a missing directory, got nil")
	}
}
