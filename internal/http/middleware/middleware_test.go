package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"schedule-service/internal/metrics"
)

func TestMiddlewareGeneratesRequestID(t *testing.T) {
	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	handler := LoggingMiddleware(nil, metrics.NewRecorder(), next)

	req := httptest.NewRequest(http.MethodGet, "/api/schedule", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	headerID := rec.Header().Get("X-Request-ID")
	if headerID == "" {
		t.Fatal("expected a generated request ID header")
	}
	if seenID != headerID {
		t.Fatalf("context ID %q != header ID %q", seenID, headerID)
	}
}

func TestMiddlewarePropagatesValidRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	handler := LoggingMiddleware(nil, nil, next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-abc_123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "req-abc_123" {
		t.Fatalf("request ID = %q", got)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("status = %d", rec.Code)
	}
}

func TestMiddlewareReplacesMalformedRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	handler := LoggingMiddleware(nil, nil, next)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "../../etc/passwd\n")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	got := rec.Header().Get("X-Request-ID")
	if got == "" || !requestIDPattern.MatchString(got) {
		t.Fatalf("expected a regenerated ID, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/api/schedule": "/api/schedule",
		"/health":       "/health",
		"/metrics":      "other",
		"/api/other":    "other",
		"":              "",
	}
	for input, want := range cases {
		if got := normalizePath(input); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestRequestIDFromContextMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	if id := RequestIDFromContext(req.Context()); id != "" {
		t.Fatalf("expected empty ID, got %q", id)
	}
}
