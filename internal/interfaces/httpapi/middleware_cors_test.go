package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORS(t *testing.T) {
	tests := []struct {
		name       string
		allowed    []string
		method     string
		origin     string
		wantStatus int
		wantOrigin string
		wantVary   bool
	}{
		{name: "listed origin", allowed: []string{" https://stats.example.com "}, method: http.MethodGet, origin: "https://stats.example.com", wantStatus: http.StatusOK, wantOrigin: "https://stats.example.com", wantVary: true},
		{name: "wildcard preflight", allowed: []string{"*"}, method: http.MethodOptions, origin: "https://stats.example.com", wantStatus: http.StatusNoContent, wantOrigin: "*"},
		{name: "unlisted origin", allowed: []string{"https://allowed.example.com"}, method: http.MethodGet, origin: "https://other.example.com", wantStatus: http.StatusOK},
		{name: "unlisted preflight still answered", allowed: []string{"https://allowed.example.com"}, method: http.MethodOptions, origin: "https://other.example.com", wantStatus: http.StatusNoContent},
		{name: "same origin request", allowed: []string{"*"}, method: http.MethodGet, wantStatus: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := CORS(tt.allowed, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			}))

			req := httptest.NewRequest(tt.method, "/v1/stats", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status=%d want=%d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Fatalf("Access-Control-Allow-Origin=%q want=%q", got, tt.wantOrigin)
			}
			if gotVary := rec.Header().Get("Vary") == "Origin"; gotVary != tt.wantVary {
				t.Fatalf("Vary: Origin present=%t want=%t", gotVary, tt.wantVary)
			}
		})
	}
}

func TestRetryAfterSeconds(t *testing.T) {
	if got := retryAfterSeconds(50); got != "1" {
		t.Fatalf("fast limiter must ask for 1s, got %s", got)
	}
	if got := retryAfterSeconds(0.25); got != "4" {
		t.Fatalf("expected 4s for 0.25 rps, got %s", got)
	}
}
