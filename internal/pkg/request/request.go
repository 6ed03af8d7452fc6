package request

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/form/v4"

	"github.com/devbhoomi/tourism-api/internal/pkg/response"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload"
	"github.com/devbhoomi/tourism-api/internal/pkg/validator"
)

// ImageField is the multipart field carrying an attached file.
const ImageField = "image"

const (
	maxMultipartMemory = 16 << 20
	maxJSONBody        = 1 << 20
)

var (
	ErrInvalidBody = errors.New("invalid request body")
	ErrEmptyBody   = errors.New("request body is empty")
	ErrInvalidID   = errors.New("invalid id")
)

var formDecoder = form.NewDecoder()

// Bind decodes a JSON, multipart or urlencoded body into dst and validates it.
// For multipart bodies the file in ImageField is returned, nil when absent.
// Validation failures are returned as validator field maps via *ValidationError.
func Bind(r *http.Request, dst any) (*upload.Attachment, error) {
	var att *upload.Attachment

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch {
	case mediaType == "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		if err := formDecoder.Decode(dst, r.MultipartForm.Value); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		if files := r.MultipartForm.File[ImageField]; len(files) > 0 {
			att = upload.FromFileHeader(files[0])
		}
	case mediaType == "application/x-www-form-urlencoded":
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
		if err := formDecoder.Decode(dst, r.PostForm); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	default:
		dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBody))
		dec.DisallowUnknownFields()
		if err := dec.Decode(dst); err != nil {
			if errors.Is(err, io.EOF) {
				return nil, ErrEmptyBody
			}
			return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
		}
	}

	if fields := validator.Validate(dst); fields != nil {
		return nil, &ValidationError{Fields: fields}
	}
	return att, nil
}

// ValidationError carries per-field validation messages.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	return "validation failed"
}

// WriteBindError sends the 400 response matching a Bind error.
func WriteBindError(w http.ResponseWriter, err error) {
	var verr *ValidationError
	switch {
	case errors.As(err, &verr):
		response.ValidationError(w, verr.Fields)
	case errors.Is(err, ErrEmptyBody):
		response.BadRequest(w, "Request body is empty")
	default:
		response.BadRequest(w, "Invalid request body")
	}
}

// ParseID reads a positive integer URL parameter.
func ParseID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, ErrInvalidID
	}
	return id, nil
}

// QueryInt64 reads an optional positive integer query parameter.
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, fmt.Errorf("invalid %s", name)
	}
	return &v, nil
}

// QueryString reads an optional trimmed query parameter.
func QueryString(r *http.Request, name string) *string {
	raw := strings.TrimSpace(r.URL.Query().Get(name))
	if raw == "" {
		return nil
	}
	return &raw
}
