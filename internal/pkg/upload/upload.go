// Package upload validates, names, stores and removes files attached to
// content rows. Rows store the relative path returned by Store; URL turns
// it into an absolute public URL.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"mime/multipart"
	"path"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/devbhoomi/tourism-api/internal/pkg/cleanup"
	"github.com/devbhoomi/tourism-api/internal/pkg/imaging"
	"github.com/devbhoomi/tourism-api/internal/pkg/metrics"
	"github.com/devbhoomi/tourism-api/internal/pkg/storage"
)

// ErrRejected wraps validation failures of the uploaded file itself.
var ErrRejected = errors.New("upload rejected")

// Attachment is a client-supplied file not yet stored.
type Attachment struct {
	Filename string
	Size     int64
	open     func() (io.ReadCloser, error)
}

// FromFileHeader wraps a multipart file.
func FromFileHeader(fh *multipart.FileHeader) *Attachment {
	return &Attachment{
		Filename: fh.Filename,
		Size:     fh.Size,
		open: func() (io.ReadCloser, error) {
			return fh.Open()
		},
	}
}

// FromBytes wraps in-memory content.
func FromBytes(filename string, data []byte) *Attachment {
	return &Attachment{
		Filename: filename,
		Size:     int64(len(data)),
		open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}

// Options controls where and how a file is stored.
type Options struct {
	Dir      string // e.g. "states", "territory-seasons"
	Prefix   string // optional filename prefix
	Category string // storage.CategoryImage by default
}

// Handler stores and removes uploaded files.
type Handler struct {
	store     storage.Storage
	processor *imaging.Processor
	sink      cleanup.Sink
	now       func() time.Time
	random    func() int
}

// NewHandler creates an upload handler. processor may be nil to store files as-is.
func NewHandler(store storage.Storage, processor *imaging.Processor, sink cleanup.Sink) *Handler {
	if sink == nil {
		sink = cleanup.NewReporter(nil)
	}
	return &Handler{
		store:     store,
		processor: processor,
		sink:      sink,
		now:       time.Now,
		random:    func() int { return rand.IntN(1_000_000_000) },
	}
}

// Store validates the attachment and writes it under opts.Dir.
// It returns the relative path to record on the row.
func (h *Handler) Store(ctx context.Context, att *Attachment, opts Options) (string, error) {
	category := opts.Category
	if category == "" {
		category = storage.CategoryImage
	}

	rc, err := att.open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer rc.Close()

	buf, mimeType, err := storage.ValidateAndBuffer(rc, category)
	if err != nil {
		if storage.IsUserError(err) {
			metrics.ObserveUpload(category, "rejected")
			return "", fmt.Errorf("%w: %w", ErrRejected, err)
		}
		return "", err
	}

	data := buf.Bytes()
	if h.processor != nil {
		fitted, changed, err := h.processor.Fit(data, mimeType)
		if err != nil {
			metrics.ObserveUpload(category, "rejected")
			return "", fmt.Errorf("%w: %w", ErrRejected, err)
		}
		if changed {
			log.Debug().Str("file", att.Filename).Int("from", len(data)).Int("to", len(fitted)).Msg("Image downscaled")
			data = fitted
		}
	}

	relPath := path.Join(opts.Dir, h.filename(opts.Prefix, storage.ExtensionFor(mimeType, att.Filename)))
	if err := h.store.Save(ctx, relPath, bytes.NewReader(data), mimeType); err != nil {
		metrics.ObserveUpload(category, "failed")
		return "", fmt.Errorf("save upload: %w", err)
	}

	metrics.ObserveUpload(category, "stored")
	return relPath, nil
}

// filename builds <prefix-><epoch-ms>-<9 random digits><ext>.
func (h *Handler) filename(prefix, ext string) string {
	name := fmt.Sprintf("%d-%09d%s", h.now().UnixMilli(), h.random(), ext)
	if prefix != "" {
		name = prefix + "-" + name
	}
	return name
}

// Remove deletes stored files. Empty paths are skipped and failures are
// reported to the cleanup sink instead of being returned.
func (h *Handler) Remove(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if p == "" || isAbsoluteURL(p) {
			continue
		}
		if err := h.store.Delete(ctx, p); err != nil {
			h.sink.Report(ctx, cleanup.Failure{Path: p, Reason: err.Error()})
		}
	}
}

// URL returns the absolute public URL for a stored path, or "" for none.
func (h *Handler) URL(relPath string) string {
	if relPath == "" {
		return ""
	}
	if isAbsoluteURL(relPath) {
		return relPath
	}
	return h.store.GetURL(strings.TrimPrefix(relPath, "/"))
}

// URLPtr is URL for nullable columns.
func (h *Handler) URLPtr(relPath *string) string {
	if relPath == nil {
		return ""
	}
	return h.URL(*relPath)
}

func isAbsoluteURL(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}
