package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalStorageSaveExistsDelete(t *testing.T) {
	dir := t.TempDir()
	s, err := NewLocalStorage(dir, "http://localhost:5000/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	ctx := context.Background()

	if err := s.Save(ctx, "states/almora.jpg", strings.NewReader("data"), "image/jpeg"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "states", "almora.jpg")); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}

	ok, err := s.Exists(ctx, "states/almora.jpg")
	if err != nil || !ok {
		t.Fatalf("Exists = %v, %v", ok, err)
	}

	if err := s.Delete(ctx, "states/almora.jpg"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := s.Delete(ctx, "states/almora.jpg"); err != nil {
		t.Fatalf("second Delete should be a no-op: %v", err)
	}

	ok, err = s.Exists(ctx, "states/almora.jpg")
	if err != nil || ok {
		t.Fatalf("Exists after delete = %v, %v", ok, err)
	}
}

func TestLocalStorageStaysInsideBase(t *testing.T) {
	root := t.TempDir()
	base := filepath.Join(root, "uploads")
	s, err := NewLocalStorage(base, "http://localhost/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}

	if err := s.Save(context.Background(), "../escape.txt", strings.NewReader("x"), "text/plain"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "escape.txt")); !os.IsNotExist(err) {
		t.Fatalf("file escaped base directory")
	}
	if _, err := os.Stat(filepath.Join(base, "escape.txt")); err != nil {
		t.Fatalf("expected file inside base: %v", err)
	}
}

func TestLocalStorageGetURL(t *testing.T) {
	s, err := NewLocalStorage(t.TempDir(), "https://cdn.example.com/uploads/")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	if got := s.GetURL("hotels/a.png"); got != "https://cdn.example.com/uploads/hotels/a.png" {
		t.Fatalf("GetURL = %q", got)
	}
}

func TestNewSelectsDriver(t *testing.T) {
	ctx := context.Background()

	s, err := New(ctx, Config{LocalDir: t.TempDir(), LocalURL: "http://localhost:5000/uploads"})
	if err != nil {
		t.Fatalf("New(local): %v", err)
	}
	if _, ok := s.(*LocalStorage); !ok {
		t.Fatalf("expected *LocalStorage, got %T", s)
	}

	if _, err := New(ctx, Config{Driver: "ftp"}); err == nil {
		t.Fatal("expected error for unknown driver")
	}
}
