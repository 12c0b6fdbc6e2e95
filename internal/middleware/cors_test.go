package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vasapolrittideah/myflix-api/internal/middleware"
)

func TestCORS_AllowedOrigin(t *testing.T) {
	t.Parallel()

	handler := middleware.CORS([]string{"https://myflix.example.com"})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Origin", "https://myflix.example.com")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d want %d", resp.Code, http.StatusOK)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://myflix.example.com" {
		t.Fatalf("Access-Control-Allow-Origin mismatch: got %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	t.Parallel()

	handler := middleware.CORS([]string{"https://myflix.example.com"})(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatalf("route handler must not run for a disallowed origin")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/movies", nil)
	req.Header.Set("Origin", "https://evil.example.com")

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusForbidden {
		t.Fatalf("status mismatch: got %d want %d", resp.Code, http.StatusForbidden)
	}
}

func TestCORS_PreflightDisallowedOrigin(t *testing.T) {
	t.Parallel()

	handler := middleware.CORS([]string{"https://myflix.example.com"})(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatalf("route handler must not run for a disallowed preflight")
		}),
	)

	req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	// Preflights are terminated by the cors library, so the allow-list
	// check has to fire before it to surface the explicit 403.
	if resp.Code != http.StatusForbidden {
		t.Fatalf("status mismatch: got %d want %d", resp.Code, http.StatusForbidden)
	}
}

func TestCORS_PreflightAllowedOrigin(t *testing.T) {
	t.Parallel()

	handler := middleware.CORS([]string{"https://myflix.example.com"})(
		http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			t.Fatalf("preflights are answered by the cors middleware itself")
		}),
	)

	req := httptest.NewRequest(http.MethodOptions, "/movies", nil)
	req.Header.Set("Origin", "https://myflix.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d want %d", resp.Code, http.StatusOK)
	}
	if got := resp.Header().Get("Access-Control-Allow-Origin"); got != "https://myflix.example.com" {
		t.Fatalf("Access-Control-Allow-Origin mismatch: got %q", got)
	}
}

func TestCORS_NoOriginHeader(t *testing.T) {
	t.Parallel()

	handler := middleware.CORS([]string{"https://myflix.example.com"})(
		http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}),
	)

	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/movies", nil))

	// Non-browser clients without an Origin header pass straight through.
	if resp.Code != http.StatusOK {
		t.Fatalf("status mismatch: got %d want %d", resp.Code, http.StatusOK)
	}
}
