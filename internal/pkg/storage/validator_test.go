package storage

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestValidateFile(t *testing.T) {
	img := pngBytes(t)

	tests := []struct {
		name     string
		data     []byte
		category string
		maxSize  int64
		wantErr  error
		wantMime string
	}{
		{name: "png image", data: img, category: CategoryImage, maxSize: MB, wantMime: "image/png"},
		{name: "empty", data: nil, category: CategoryImage, maxSize: MB, wantErr: ErrEmptyFile},
		{name: "too large", data: img, category: CategoryImage, maxSize: int64(len(img) - 1), wantErr: ErrFileTooLarge},
		{name: "text rejected", data: []byte("hello world"), category: CategoryGallery, maxSize: MB, wantErr: ErrInvalidMimeType},
		{name: "unknown category", data: img, category: "docs", maxSize: MB, wantErr: ErrUnknownCategory},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mime, err := ValidateFile(bytes.NewReader(tt.data), tt.category, tt.maxSize)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !IsUserError(err) {
					t.Fatalf("expected user error for %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if mime != tt.wantMime {
				t.Fatalf("mime = %q, want %q", mime, tt.wantMime)
			}
		})
	}
}

func TestMediaAllowsMP4(t *testing.T) {
	found := false
	for _, m := range AllowedMimeTypes[CategoryMedia] {
		if m == "video/mp4" {
			found = true
		}
	}
	if !found {
		t.Fatal("media category should accept mp4")
	}
	for _, m := range AllowedMimeTypes[CategoryImage] {
		if m == "video/mp4" {
			t.Fatal("image category must not accept mp4")
		}
	}
}

func TestExtensionFor(t *testing.T) {
	if got := ExtensionFor("image/jpeg", "x.jpeg"); got != ".jpg" {
		t.Fatalf("got %q", got)
	}
	if got := ExtensionFor("application/octet-stream", "Clip.MOV"); got != ".mov" {
		t.Fatalf("got %q", got)
	}
}
