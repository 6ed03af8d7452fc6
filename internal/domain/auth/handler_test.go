package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/devbhoomi/tourism-api/internal/middleware"
)

func TestLoginThenMe(t *testing.T) {
	svc, _, jwtService := newTestService(t)
	if _, err := svc.CreateAdmin(context.Background(), "ops@example.com", "password123", "Ops"); err != nil {
		t.Fatalf("CreateAdmin: %v", err)
	}

	router := chi.NewRouter()
	limiter := middleware.PerMinute(3)
	router.Mount("/auth", NewHandler(svc).Routes(middleware.Auth(jwtService), limiter.Handler))

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	if rr := login(`{"email":"ops@example.com","password":"wrong"}`); rr.Code != http.StatusUnauthorized {
		t.Fatalf("wrong password: expected 401, got %d", rr.Code)
	}
	if rr := login(`{"email":"not-an-email"}`); rr.Code != http.StatusBadRequest {
		t.Fatalf("invalid body: expected 400, got %d", rr.Code)
	}

	rr := login(`{"email":"ops@example.com","password":"password123"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("login: %d %s", rr.Code, rr.Body.String())
	}
	var out struct {
		Data AuthResponse `json:"data"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.Data.AccessToken == "" {
		t.Fatal("expected access token")
	}

	if rr := login(`{"email":"ops@example.com","password":"password123"}`); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("fourth attempt should be throttled, got %d", rr.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+out.Data.AccessToken)
	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK || !strings.Contains(rr.Body.String(), "ops@example.com") {
		t.Fatalf("me: %d %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/auth/me", nil))
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("me without token: expected 401, got %d", rr.Code)
	}
}
