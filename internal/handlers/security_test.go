package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/printshop/printshop/internal/config"
)

func TestRequireSameOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		method     string
		origin     string
		referer    string
		wantStatus int
	}{
		{name: "matching origin", method: http.MethodPost, origin: "https://quotes.example.com", wantStatus: http.StatusNoContent},
		{name: "matching referer", method: http.MethodPost, referer: "https://quotes.example.com/cart", wantStatus: http.StatusNoContent},
		{name: "missing origin and referer", method: http.MethodPost, wantStatus: http.StatusForbidden},
		{name: "cross origin", method: http.MethodPost, origin: "https://attacker.example", wantStatus: http.StatusForbidden},
		{name: "cross origin referer", method: http.MethodPost, referer: "https://attacker.example/page", wantStatus: http.StatusForbidden},
		{name: "opaque origin", method: http.MethodPost, origin: "null", wantStatus: http.StatusForbidden},
		{name: "origin with port and mixed case", method: http.MethodPost, origin: "https://QUOTES.example.com:443", wantStatus: http.StatusNoContent},
		{name: "matching origin with foreign referer", method: http.MethodPost, origin: "https://quotes.example.com", referer: "https://attacker.example/", wantStatus: http.StatusForbidden},
		{name: "read only method", method: http.MethodGet, wantStatus: http.StatusNoContent},
	}

	h := &Handlers{
		config: &config.Config{BaseURL: "https://quotes.example.com"},
		logger: testLogger(),
	}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, "https://quotes.example.com/api/catalog/refresh", nil)
			if tc.origin != "" {
				req.Header.Set("Origin", tc.origin)
			}
			if tc.referer != "" {
				req.Header.Set("Referer", tc.referer)
			}
			rec := httptest.NewRecorder()

			h.RequireSameOrigin(next).ServeHTTP(rec, req)

			if rec.Code != tc.wantStatus {
				t.Fatalf("expected status %d, got %d", tc.wantStatus, rec.Code)
			}
		})
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	h := &Handlers{}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	h.SecurityHeaders(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/validate/quantity?qty=5", nil))

	for header, want := range map[string]string{
		"X-Content-Type-Options":  "nosniff",
		"X-Frame-Options":         "DENY",
		"Cache-Control":           "no-store",
		"Content-Security-Policy": "default-src 'none'; frame-ancestors 'none'",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Fatalf("%s = %q, want %q", header, got, want)
		}
	}
}
