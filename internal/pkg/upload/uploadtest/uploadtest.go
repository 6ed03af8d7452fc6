// Package uploadtest provides an upload.Handler backed by a temporary directory.
package uploadtest

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/devbhoomi/tourism-api/internal/pkg/cleanup"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
)

const BaseURL = "http://files.test/uploads"

// Files is a local upload handler rooted at Dir.
type Files struct {
	*upload.Handler
	Dir      string
	Failures []cleanup.Failure
}

// Report records cleanup failures.
func (f *Files) Report(_ context.Context, failure cleanup.Failure) {
	f.Failures = append(f.Failures, failure)
}

// New creates a handler writing into t.TempDir().
func New(t *testing.T) *Files {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, BaseURL)
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	f := &Files{Dir: dir}
	f.Handler = upload.NewHandler(store, nil, f)
	return f
}

// Exists reports whether a stored relative path is on disk.
func (f *Files) Exists(rel string) bool {
	_, err := os.Stat(filepath.Join(f.Dir, filepath.FromSlash(rel)))
	return err == nil
}

// Put stores a PNG directly and returns its relative path.
func (f *Files) Put(t *testing.T, dir string) string {
	t.Helper()
	rel, err := f.Store(context.Background(), PNG(t), upload.Options{Dir: dir})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	return rel
}

// PNG returns a tiny valid PNG attachment.
func PNG(t *testing.T) *upload.Attachment {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode png: %v", err)
	}
	return upload.FromBytes("image.png", buf.Bytes())
}
