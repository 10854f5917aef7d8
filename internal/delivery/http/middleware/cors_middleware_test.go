package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSMiddlewareSetsConfiguredOrigin(t *testing.T) {
	m := NewCORSMiddleware("https://portal.example.com")

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest(http.MethodGet, "/api/v1/patients", nil)
	w := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(w, r)

	if !called {
		t.Error("next handler was not called for a non-preflight request")
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://portal.example.com" {
		t.Errorf("Access-Control-Allow-Origin = %q, want configured origin", got)
	}
}

func TestCORSMiddlewareDefaultsToWildcard(t *testing.T) {
	m := NewCORSMiddleware("")

	r := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	m.Handle(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})).ServeHTTP(w, r)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}

func TestCORSMiddlewareShortCircuitsPreflight(t *testing.T) {
	m := NewCORSMiddleware("")

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	r := httptest.NewRequest(http.MethodOptions, "/api/v1/patients", nil)
	w := httptest.NewRecorder()
	m.Handle(next).ServeHTTP(w, r)

	if called {
		t.Error("next handler must not run for a preflight request")
	}
	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
}
