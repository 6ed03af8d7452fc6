package storage

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"slices"
	"strings"
)

var (
	ErrFileTooLarge    = errors.New("file exceeds maximum size")
	ErrInvalidMimeType = errors.New("file type not allowed")
	ErrEmptyFile       = errors.New("file is empty")
	ErrUnknownCategory = errors.New("unknown upload category")
)

// Upload categories
const (
	CategoryImage   = "image"
	CategoryMedia   = "media"
	CategoryGallery = "gallery"
)

const (
	MB = 1024 * 1024

	maxImageSize   = 5 * MB
	maxMediaSize   = 10 * MB
	maxGallerySize = 10 * MB
)

var imageMimeTypes = []string{"image/jpeg", "image/png", "image/gif", "image/webp"}

// AllowedMimeTypes lists accepted content types per category.
var AllowedMimeTypes = map[string][]string{
	CategoryImage:   imageMimeTypes,
	CategoryMedia:   append(slices.Clone(imageMimeTypes), "video/mp4"),
	CategoryGallery: imageMimeTypes,
}

// MaxFileSizes is the size ceiling per category in bytes.
var MaxFileSizes = map[string]int64{
	CategoryImage:   maxImageSize,
	CategoryMedia:   maxMediaSize,
	CategoryGallery: maxGallerySize,
}

// ValidateFile validates file size and MIME type for a given category
func ValidateFile(reader io.Reader, category string, maxSize int64) ([]byte, string, error) {
	allowedTypes, ok := AllowedMimeTypes[category]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	// Read at most maxSize + 1 to detect oversized files
	data, err := io.ReadAll(io.LimitReader(reader, maxSize+1))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file: %w", err)
	}

	if len(data) == 0 {
		return nil, "", ErrEmptyFile
	}
	if int64(len(data)) > maxSize {
		return nil, "", ErrFileTooLarge
	}

	// Detect MIME type from content (magic bytes)
	mimeType := http.DetectContentType(data)
	if idx := strings.Index(mimeType, ";"); idx != -1 {
		mimeType = strings.TrimSpace(mimeType[:idx])
	}

	if !slices.Contains(allowedTypes, mimeType) {
		return nil, "", ErrInvalidMimeType
	}

	return data, mimeType, nil
}

// ValidateAndBuffer reads and validates using the category's size ceiling
func ValidateAndBuffer(reader io.Reader, category string) (*bytes.Buffer, string, error) {
	maxSize, ok := MaxFileSizes[category]
	if !ok {
		return nil, "", fmt.Errorf("%w: %s", ErrUnknownCategory, category)
	}

	data, mimeType, err := ValidateFile(reader, category, maxSize)
	if err != nil {
		return nil, "", err
	}

	return bytes.NewBuffer(data), mimeType, nil
}

// ExtensionFor returns the file extension for a MIME type, falling back
// to the client filename's extension.
func ExtensionFor(mimeType, filename string) string {
	switch mimeType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "video/mp4":
		return ".mp4"
	default:
		return strings.ToLower(filepath.Ext(filename))
	}
}

// IsUserError reports whether err describes a bad upload rather than a server failure.
func IsUserError(err error) bool {
	return errors.Is(err, ErrFileTooLarge) ||
		errors.Is(err, ErrInvalidMimeType) ||
		errors.Is(err, ErrEmptyFile) ||
		errors.Is(err, ErrUnknownCategory)
}
