package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "post.md")
	if err := os.WriteFile(file, []byte("# hi"), 0o644); err != nil {
		t.Fatal(err)
	}

	if !FileExists(file) {
		t.Errorf("FileExists(%q) = false, want true", file)
	}
	if FileExists(dir) {
		t.Errorf("FileExists(%q) = true for a directory, want false", dir)
	}
	if FileExists(filepath.Join(dir, "missing.md")) {
		t.Error("FileExists() = true for a missing file, want false")
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	if !DirExists(dir) {
		t.Errorf("DirExists(%q) = false, want true", dir)
	}
	if DirExists(filepath.Join(dir, "missing")) {
		t.Error("DirExists() = true for a missing directory, want false")
	}
}

func TestIsFilePath(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"relative path", "content/post.md", true},
		{"windows path", `content\post.md`, true},
		{"bare name", "monokai", false},
		{"empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsFilePath(tt.input); got != tt.want {
				t.Errorf("IsFilePath(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "a.txt")
	dst := filepath.Join(dir, "out", "nested", "a.txt")
	if err := os.WriteFile(src, []byte("payload"), 0o644); err != nil {
		t.Fatal(err)
	}

	if err := CopyFile(src, dst); err != nil {
		t.Fatalf("CopyFile() error = %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "payload" {
		t.Errorf("copied content = %q, want %q", got, "payload")
	}
}

func TestCopyFileMissingSource(t *testing.T) {
	dir := t.TempDir()
	err := CopyFile(filepath.Join(dir, "missing"), filepath.Join(dir, "dst"))
	if err == nil {
		t.Error("CopyFile() with missing source: expected error, got nil")
	}
}

func TestCopyDir(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "attachments")
	for _, rel := range []string{"img/a.png", "img/b.png", "doc.pdf"} {
		path := filepath.Join(src, rel)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(rel), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	dst := filepath.Join(dir, "public", "attachments")
	if err := CopyDir(src, dst); err != nil {
		t.Fatalf("CopyDir() error = %v", err)
	}
	for _, rel := range []string{"img/a.png", "img/b.png", "doc.pdf"} {
		got, err := os.ReadFile(filepath.Join(dst, rel))
		if err != nil {
			t.Fatalf("reading copied %s: %v", rel, err)
		}
		if string(got) != rel {
			t.Errorf("copied %s content = %q, want %q", rel, got, rel)
		}
	}
}

func TestCopyDirMissingSource(t *testing.T) {
	dir := t.TempDir()
	if err := CopyDir(filepath.Join(dir, "missing"), filepath.Join(dir, "dst")); err != nil {
		t.Errorf("CopyDir() with missing source: error = %v, want nil", err)
	}
}
