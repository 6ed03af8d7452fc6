package imaging

import (
	"bytes"
	"fmt"

	"github.com/disintegration/imaging"
)

// Config for image processing
type Config struct {
	MaxDimension int // Longest side after scaling; 0 disables scaling
	Quality      int // JPEG quality 1-100 (default 85)
}

// DefaultConfig returns default processing config
func DefaultConfig() Config {
	return Config{
		MaxDimension: 2400,
		Quality:      85,
	}
}

// Processor down-scales oversized uploads before they are stored
type Processor struct {
	config Config
}

// NewProcessor creates image processor
func NewProcessor(config Config) *Processor {
	if config.Quality <= 0 || config.Quality > 100 {
		config.Quality = 85
	}
	return &Processor{config: config}
}

// Fit shrinks a JPEG or PNG so neither side exceeds MaxDimension, keeping
// the original format. Other types and images already within bounds are
// returned untouched with changed=false.
func (p *Processor) Fit(data []byte, mimeType string) (out []byte, changed bool, err error) {
	format, ok := formatFor(mimeType)
	if !ok || p.config.MaxDimension <= 0 {
		return data, false, nil
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, false, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= p.config.MaxDimension && bounds.Dy() <= p.config.MaxDimension {
		return data, false, nil
	}

	resized := imaging.Fit(img, p.config.MaxDimension, p.config.MaxDimension, imaging.Lanczos)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, resized, format, imaging.JPEGQuality(p.config.Quality)); err != nil {
		return nil, false, fmt.Errorf("failed to encode image: %w", err)
	}
	return buf.Bytes(), true, nil
}

// GIFs are skipped to keep animation frames; WebP has no encoder here.
func formatFor(mimeType string) (imaging.Format, bool) {
	switch mimeType {
	case "image/jpeg":
		return imaging.JPEG, true
	case "image/png":
		return imaging.PNG, true
	default:
		return 0, false
	}
}
