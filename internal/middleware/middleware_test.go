package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestAPIKey(t *testing.T) {
	h := APIKey("secret")(okHandler)

	tests := []struct {
		name   string
		path   string
		header map[string]string
		want   int
	}{
		{"missing key", "/api/v1/policies", nil, http.StatusUnauthorized},
		{"wrong key", "/api/v1/policies", map[string]string{"X-API-Key": "nope"}, http.StatusUnauthorized},
		{"header key", "/api/v1/policies", map[string]string{"X-API-Key": "secret"}, http.StatusOK},
		{"bearer key", "/api/v1/policies", map[string]string{"Authorization": "Bearer secret"}, http.StatusOK},
		{"public health", "/health", nil, http.StatusOK},
		{"public readiness", "/readyz", nil, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			for k, v := range tt.header {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, rec.Code)
			}
		})
	}
}

func TestRateLimiter(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(2, time.Minute)
	rl.clock = func() time.Time { return now }
	h := rl.Middleware(okHandler)

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/rates", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	if call("10.0.0.1:5000") != http.StatusOK || call("10.0.0.1:5001") != http.StatusOK {
		t.Fatal("expected first two requests to pass")
	}
	if got := call("10.0.0.1:5002"); got != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", got)
	}
	if got := call("[::1]:5000"); got != http.StatusOK {
		t.Fatalf("expected other client to pass, got %d", got)
	}

	now = now.Add(61 * time.Second)
	if got := call("10.0.0.1:5003"); got != http.StatusOK {
		t.Fatalf("expected window to reset, got %d", got)
	}

	rl.prune()
	if _, ok := rl.requests["::1"]; ok {
		t.Fatal("expected idle client to be pruned")
	}
}

func TestClientIP(t *testing.T) {
	for in, want := range map[string]string{
		"10.0.0.1:8080": "10.0.0.1",
		"[::1]:443":     "::1",
		"10.0.0.1":      "10.0.0.1",
	} {
		if got := clientIP(in); got != want {
			t.Fatalf("clientIP(%q): expected %q, got %q", in, want, got)
		}
	}
}

func TestLimitRequestBody(t *testing.T) {
	h := LimitRequestBody(8)(okHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(`{"vehicle_type":"sedan"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rec.Code)
	}
}

func TestCORS(t *testing.T) {
	h := CORS([]string{"http://portal.test/"})(okHandler)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/quotes", nil)
	req.Header.Set("Origin", "http://portal.test")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 preflight, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://portal.test" {
		t.Fatalf("expected origin echoed, got %q", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil)
	req.Header.Set("Origin", "http://evil.test")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no allow-origin, got %q", got)
	}
}

func TestSecurityHeadersAndJSON(t *testing.T) {
	h := SecurityHeaders(SetJSONContentType(okHandler))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if got := rec.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected JSON content type, got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected DENY, got %q", got)
	}
}
