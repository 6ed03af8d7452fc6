package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/devbhoomi/tourism-api/internal/config"
	"github.com/devbhoomi/tourism-api/internal/pkg/jwt"
	"github.com/devbhoomi/tourism-api/internal/pkg/metrics"
	"github.com/devbhoomi/tourism-api/internal/pkg/upload/uploadtest"
)

// testRouter builds the full router without a database; only routes that
// never reach a repository are exercised.
func testRouter(t *testing.T, withMetrics bool) (http.Handler, *dependencies) {
	t.Helper()
	files := uploadtest.New(t)

	deps := &dependencies{
		cfg: &config.Config{
			Env:                 "test",
			AllowedOrigins:      []string{"http://localhost:3000"},
			StorageDriver:       "local",
			UploadDir:           files.Dir,
			SearchLimitPerTable: 20,
			LoginRatePerMinute:  10,
			SearchRatePerSecond: 50,
		},
		files: files.Handler,
		jwt:   jwt.NewService("test-secret", time.Hour),
	}
	if withMetrics {
		deps.registry = metrics.InitRegistry()
	}
	return newRouter(deps), deps
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code string `json:"code"`
	} `json:"error"`
}

func serve(t *testing.T, h http.Handler, req *http.Request) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	var env envelope
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s: %v", rr.Body.String(), err)
		}
	}
	return rr, env
}

func TestHealthWithoutDatabase(t *testing.T) {
	h, _ := testRouter(t, false)

	rr, env := serve(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rr.Code != http.StatusOK || !env.Success {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(string(env.Data), `"database":"skipped"`) {
		t.Fatalf("unexpected health payload: %s", env.Data)
	}
	if rr.Header().Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
}

func TestWritesRequireToken(t *testing.T) {
	h, _ := testRouter(t, false)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/states"},
		{http.MethodDelete, "/api/states/1"},
		{http.MethodPost, "/api/districts/3/images"},
		{http.MethodPut, "/api/hotels/rooms/4"},
		{http.MethodPost, "/api/gallery"},
		{http.MethodPost, "/api/seasons"},
		{http.MethodPut, "/api/packages/2"},
		{http.MethodDelete, "/api/attractions/2"},
		{http.MethodPost, "/api/web-stories"},
		{http.MethodGet, "/api/bookings"},
		{http.MethodGet, "/api/auth/me"},
	}
	for _, tc := range cases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader("{}"))
			req.Header.Set("Content-Type", "application/json")
			rr, _ := serve(t, h, req)
			if rr.Code != http.StatusUnauthorized {
				t.Fatalf("expected 401, got %d: %s", rr.Code, rr.Body.String())
			}
		})
	}
}

func TestAuthorizedWriteReachesValidation(t *testing.T) {
	h, deps := testRouter(t, false)

	token, _, err := deps.jwt.GenerateAccessToken(1, "admin@devbhoomi.test", "admin")
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/team", strings.NewReader(`{"name":""}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	rr, env := serve(t, h, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rr.Code, rr.Body.String())
	}
	if env.Error == nil || env.Error.Code != "VALIDATION_ERROR" {
		t.Fatalf("expected validation error, got %s", rr.Body.String())
	}
}

func TestBlankSearchSkipsDatabase(t *testing.T) {
	h, _ := testRouter(t, false)

	rr, env := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/search?q=%20", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var result struct {
		Results []json.RawMessage `json:"results"`
		Total   int               `json:"total"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result.Results == nil || len(result.Results) != 0 || result.Total != 0 {
		t.Fatalf("expected empty result, got %s", env.Data)
	}
}

func TestUnknownRoute(t *testing.T) {
	h, _ := testRouter(t, false)

	rr, env := serve(t, h, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	if rr.Code != http.StatusNotFound || env.Success {
		t.Fatalf("expected 404 envelope, got %d: %s", rr.Code, rr.Body.String())
	}
}

func TestUploadsServedFromLocalStorage(t *testing.T) {
	h, deps := testRouter(t, false)

	dir := filepath.Join(deps.cfg.UploadDir, "states")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "state-1.txt"), []byte("almora"), 0o644); err != nil {
		t.Fatal(err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/uploads/states/state-1.txt", nil))
	if rr.Code != http.StatusOK || rr.Body.String() != "almora" {
		t.Fatalf("expected file contents, got %d: %q", rr.Code, rr.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	t.Run("enabled", func(t *testing.T) {
		h, _ := testRouter(t, true)

		// one request so the route counter has a sample
		serve(t, h, httptest.NewRequest(http.MethodGet, "/health", nil))

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}
		if !strings.Contains(rr.Body.String(), "tourism_http_requests_total") {
			t.Fatalf("expected http request counter in exposition")
		}
	})

	t.Run("disabled", func(t *testing.T) {
		h, _ := testRouter(t, false)

		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rr.Code)
		}
	})
}
