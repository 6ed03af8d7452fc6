package upload

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/devbhoomi/tourism-api/internal/pkg/cleanup"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

type recordingSink struct{ failures []cleanup.Failure }

func (s *recordingSink) Report(_ context.Context, f cleanup.Failure) { s.failures = append(s.failures, f) }

func newLocal(t *testing.T) (*Handler, string, *recordingSink) {
	t.Helper()
	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir, "http://localhost:5000/uploads")
	if err != nil {
		t.Fatalf("NewLocalStorage: %v", err)
	}
	sink := &recordingSink{}
	return NewHandler(store, nil, sink), dir, sink
}

func TestStoreWritesFileWithGeneratedName(t *testing.T) {
	h, dir, _ := newLocal(t)
	h.now = func() time.Time { return time.UnixMilli(1700000000000) }
	h.random = func() int { return 42 }

	rel, err := h.Store(context.Background(), FromBytes("photo.PNG", pngBytes(t)), Options{Dir: "states", Prefix: "state"})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if rel != "states/state-1700000000000-000000042.png" {
		t.Fatalf("rel = %q", rel)
	}
	if _, err := os.Stat(filepath.Join(dir, "states", "state-1700000000000-000000042.png")); err != nil {
		t.Fatalf("file missing: %v", err)
	}
	if got := h.URL(rel); got != "http://localhost:5000/uploads/"+rel {
		t.Fatalf("URL = %q", got)
	}
}

func TestStoreNameFormatWithoutPrefix(t *testing.T) {
	h, _, _ := newLocal(t)
	rel, err := h.Store(context.Background(), FromBytes("a.png", pngBytes(t)), Options{Dir: "gallery", Category: storage.CategoryGallery})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}
	if !regexp.MustCompile(`^gallery/\d{13}-\d{9}\.png$`).MatchString(rel) {
		t.Fatalf("unexpected name %q", rel)
	}
}

func TestStoreRejectsNonImage(t *testing.T) {
	h, _, _ := newLocal(t)
	_, err := h.Store(context.Background(), FromBytes("notes.txt", []byte("plain text")), Options{Dir: "states"})
	if !errors.Is(err, ErrRejected) || !errors.Is(err, storage.ErrInvalidMimeType) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	h, dir, sink := newLocal(t)
	rel, err := h.Store(context.Background(), FromBytes("a.png", pngBytes(t)), Options{Dir: "hotels"})
	if err != nil {
		t.Fatalf("Store: %v", err)
	}

	h.Remove(context.Background(), rel, "", "hotels/missing.png")

	if _, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel))); !os.IsNotExist(err) {
		t.Fatalf("file should be gone, stat err = %v", err)
	}
	if len(sink.failures) != 0 {
		t.Fatalf("missing files are not failures: %+v", sink.failures)
	}
}

type brokenStore struct{ storage.Storage }

func (brokenStore) Delete(context.Context, string) error { return errors.New("read-only file system") }

func TestRemoveReportsFailure(t *testing.T) {
	sink := &recordingSink{}
	h := NewHandler(brokenStore{}, nil, sink)

	h.Remove(context.Background(), "states/a.png")

	if len(sink.failures) != 1 || sink.failures[0].Path != "states/a.png" {
		t.Fatalf("failures = %+v", sink.failures)
	}
}

func TestURL(t *testing.T) {
	h, _, _ := newLocal(t)
	if h.URL("") != "" {
		t.Fatal("empty path must give empty URL")
	}
	if got := h.URL("https://cdn.example.com/x.png"); got != "https://cdn.example.com/x.png" {
		t.Fatalf("absolute URL changed: %q", got)
	}
	var nilPath *string
	if h.URLPtr(nilPath) != "" {
		t.Fatal("nil path must give empty URL")
	}
}
