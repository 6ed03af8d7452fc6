package imaging

import (
	"bytes"
	"image"
	"image/png"
	"testing"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestFitDownscalesLargeImage(t *testing.T) {
	p := NewProcessor(Config{MaxDimension: 50})

	out, changed, err := p.Fit(encodePNG(t, 200, 100), "image/png")
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if !changed {
		t.Fatal("expected image to be resized")
	}

	cfg, format, err := image.DecodeConfig(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if format != "png" {
		t.Fatalf("format = %q, want png", format)
	}
	if cfg.Width != 50 || cfg.Height != 25 {
		t.Fatalf("size = %dx%d, want 50x25", cfg.Width, cfg.Height)
	}
}

func TestFitLeavesSmallImage(t *testing.T) {
	p := NewProcessor(Config{MaxDimension: 50})
	in := encodePNG(t, 10, 10)

	out, changed, err := p.Fit(in, "image/png")
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if changed || !bytes.Equal(in, out) {
		t.Fatal("expected image to be untouched")
	}
}

func TestFitSkipsUnsupportedTypes(t *testing.T) {
	p := NewProcessor(DefaultConfig())
	in := []byte("not really a video")

	out, changed, err := p.Fit(in, "video/mp4")
	if err != nil || changed || !bytes.Equal(in, out) {
		t.Fatalf("Fit = %v, %v", changed, err)
	}
}
