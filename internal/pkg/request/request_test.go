package request

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type sampleRequest struct {
	Title     string   `json:"title" form:"title" validate:"required"`
	Capital   *string  `json:"capital" form:"capital"`
	Amenities []string `json:"amenities" form:"amenities"`
}

func TestBindJSON(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"Uttarakhand","capital":"Dehradun"}`))
	r.Header.Set("Content-Type", "application/json")

	var req sampleRequest
	att, err := Bind(r, &req)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if att != nil {
		t.Fatal("JSON body has no attachment")
	}
	if req.Title != "Uttarakhand" || req.Capital == nil || *req.Capital != "Dehradun" {
		t.Fatalf("unexpected %+v", req)
	}
}

func TestBindJSONRejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"title":"x","bogus":1}`))
	var req sampleRequest
	if _, err := Bind(r, &req); !errors.Is(err, ErrInvalidBody) {
		t.Fatalf("expected ErrInvalidBody, got %v", err)
	}
}

func TestBindEmptyBody(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	var req sampleRequest
	if _, err := Bind(r, &req); !errors.Is(err, ErrEmptyBody) {
		t.Fatalf("expected ErrEmptyBody, got %v", err)
	}
}

func TestBindValidation(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"capital":"x"}`))
	var req sampleRequest
	_, err := Bind(r, &req)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if _, ok := verr.Fields["title"]; !ok {
		t.Fatalf("expected title error, got %v", verr.Fields)
	}

	rr := httptest.NewRecorder()
	WriteBindError(rr, err)
	if rr.Code != http.StatusBadRequest || !strings.Contains(rr.Body.String(), "VALIDATION_ERROR") {
		t.Fatalf("unexpected response %d %s", rr.Code, rr.Body.String())
	}
}

func TestBindMultipart(t *testing.T) {
	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	_ = mw.WriteField("title", "Nainital")
	_ = mw.WriteField("amenities", "wifi")
	_ = mw.WriteField("amenities", "parking")
	fw, _ := mw.CreateFormFile(ImageField, "lake.jpg")
	_, _ = fw.Write([]byte("fake"))
	_ = mw.Close()

	r := httptest.NewRequest(http.MethodPost, "/", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())

	var req sampleRequest
	att, err := Bind(r, &req)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if req.Title != "Nainital" || len(req.Amenities) != 2 {
		t.Fatalf("unexpected %+v", req)
	}
	if att == nil || att.Filename != "lake.jpg" {
		t.Fatalf("expected attachment, got %+v", att)
	}
}

func TestParseID(t *testing.T) {
	for _, tc := range []struct {
		raw     string
		wantErr bool
	}{{"12", false}, {"0", true}, {"abc", true}, {"-3", true}} {
		rctx := chi.NewRouteContext()
		rctx.URLParams.Add("id", tc.raw)
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

		_, err := ParseID(r, "id")
		if (err != nil) != tc.wantErr {
			t.Errorf("ParseID(%q) err = %v", tc.raw, err)
		}
	}
}

func TestQueryInt64(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/?territory_id=4&bad=x", nil)
	v, err := QueryInt64(r, "territory_id")
	if err != nil || v == nil || *v != 4 {
		t.Fatalf("QueryInt64 = %v, %v", v, err)
	}
	if _, err := QueryInt64(r, "bad"); err == nil {
		t.Fatal("expected error for non-numeric value")
	}
	if v, err := QueryInt64(r, "missing"); v != nil || err != nil {
		t.Fatalf("missing param = %v, %v", v, err)
	}
}
