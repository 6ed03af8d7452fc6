package territory

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/devbhoomi/tourism-api/internal/pkg/upload/uploadtest"
)

func allowAll(next http.Handler) http.Handler { return next }

func denyAll(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
}

func newTestRouter(t *testing.T, auth func(http.Handler) http.Handler) (http.Handler, *uploadtest.Files) {
	t.Helper()
	files := uploadtest.New(t)
	h := NewHandler(NewService(newFakeRepo(), files.Handler), files.Handler)
	r := chi.NewRouter()
	r.Mount("/territories", h.Routes(auth))
	return r, files
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode %q: %v", rr.Body.String(), err)
	}
	return env
}

func multipartBody(t *testing.T, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	for k, v := range fields {
		_ = mw.WriteField(k, v)
	}
	fw, err := mw.CreateFormFile("image", "cover.png")
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if err := png.Encode(fw, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("encode: %v", err)
	}
	_ = mw.Close()
	return &body, mw.FormDataContentType()
}

func TestCreateGetDeleteFlow(t *testing.T) {
	router, files := newTestRouter(t, allowAll)

	body, contentType := multipartBody(t, map[string]string{"title": "Kumaon", "capital": "Nainital"})
	req := httptest.NewRequest(http.MethodPost, "/territories", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusCreated {
		t.Fatalf("create status %d: %s", rr.Code, rr.Body.String())
	}
	var created TerritoryResponse
	if err := json.Unmarshal(decode(t, rr).Data, &created); err != nil {
		t.Fatalf("decode data: %v", err)
	}
	if created.Slug != "kumaon" {
		t.Fatalf("slug = %q", created.Slug)
	}
	if !strings.HasPrefix(created.FeaturedImage, uploadtest.BaseURL+"/territories/territory-") {
		t.Fatalf("featured image URL = %q", created.FeaturedImage)
	}
	rel := strings.TrimPrefix(created.FeaturedImage, uploadtest.BaseURL+"/")
	if !files.Exists(rel) {
		t.Fatalf("expected %s on disk", rel)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/territories/slug/kumaon", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("get by slug status %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/territories/1", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("delete status %d: %s", rr.Code, rr.Body.String())
	}
	if files.Exists(rel) {
		t.Fatal("image should be removed with the row")
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/territories/1", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get after delete status %d", rr.Code)
	}
}

func TestCreateValidation(t *testing.T) {
	router, _ := newTestRouter(t, allowAll)

	req := httptest.NewRequest(http.MethodPost, "/territories", strings.NewReader(`{"capital":"Dehradun"}`))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rr.Code)
	}
	env := decode(t, rr)
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" || env.Error.Details["title"] == "" {
		t.Fatalf("unexpected error body %s", rr.Body.String())
	}
}

func TestDuplicateSlugIsConflict(t *testing.T) {
	router, _ := newTestRouter(t, allowAll)

	for i, want := range []int{http.StatusCreated, http.StatusBadRequest} {
		req := httptest.NewRequest(http.MethodPost, "/territories", strings.NewReader(`{"title":"Garhwal","slug":"garhwal"}`))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		if rr.Code != want {
			t.Fatalf("request %d: status %d, want %d", i, rr.Code, want)
		}
		if i == 1 {
			if env := decode(t, rr); env.Error == nil || env.Error.Code != "CONFLICT" {
				t.Fatalf("expected CONFLICT, got %s", rr.Body.String())
			}
		}
	}
}

func TestWritesRequireAuth(t *testing.T) {
	router, _ := newTestRouter(t, denyAll)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/territories", strings.NewReader(`{"title":"x"}`)))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/territories", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("reads stay public, got %d", rr.Code)
	}
}

func TestInvalidID(t *testing.T) {
	router, _ := newTestRouter(t, allowAll)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/territories/abc", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}
