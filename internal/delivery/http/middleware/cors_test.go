package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	tests := []struct {
		name        string
		allowed     []string
		method      string
		origin      string
		wantStatus  int
		wantAllow   string
		wantMethods bool
	}{
		{"preflight allowed", []string{"https://wemet.example/"}, http.MethodOptions, "https://wemet.example", http.StatusNoContent, "https://wemet.example", true},
		{"preflight other origin", []string{"https://wemet.example"}, http.MethodOptions, "https://evil.example", http.StatusNoContent, "", false},
		{"request allowed", []string{" http://localhost:5173 "}, http.MethodGet, "http://localhost:5173", http.StatusOK, "http://localhost:5173", false},
		{"request other origin", []string{"http://localhost:5173"}, http.MethodGet, "https://evil.example", http.StatusOK, "", false},
		{"request without origin", []string{"*"}, http.MethodGet, "", http.StatusOK, "", false},
		{"wildcard echoes the origin", []string{"*"}, http.MethodGet, "https://preview.wemet.example", http.StatusOK, "https://preview.wemet.example", false},
		{"no origins configured", nil, http.MethodOptions, "https://wemet.example", http.StatusNoContent, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "http://test/cart", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			rr := httptest.NewRecorder()

			CORS(tt.allowed, next).ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantAllow, rr.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "Origin", rr.Header().Get("Vary"))
			if tt.wantMethods {
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), "PATCH")
				assert.Contains(t, rr.Header().Get("Access-Control-Allow-Headers"), "Accept-Language")
			} else {
				assert.Empty(t, rr.Header().Get("Access-Control-Allow-Methods"))
			}
		})
	}
}
