package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hypermindz/lbarserve/internal/config"
)

func postRPC(t *testing.T, handler http.HandlerFunc, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	body := []byte(`{"jsonrpc":"2.0","method":"list_lbar_ads","id":"1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/mcp", bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestRequireAPIKeyDisabledWhenEmpty(t *testing.T) {
	srv, _ := newTestServer(t, config.Config{})
	handler := srv.RequireAPIKey(srv.RPCHandler)

	w := postRPC(t, handler, nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestRequireAPIKey(t *testing.T) {
	srv, _ := newTestServer(t, config.Config{APIKey: "demo123"})
	handler := srv.RequireAPIKey(srv.RPCHandler)

	tests := []struct {
		name     string
		headers  map[string]string
		wantCode int
	}{
		{"no key", nil, http.StatusUnauthorized},
		{"wrong key", map[string]string{"X-API-Key": "nope"}, http.StatusUnauthorized},
		{"x-api-key", map[string]string{"X-API-Key": "demo123"}, http.StatusOK},
		{"bearer", map[string]string{"Authorization": "Bearer demo123"}, http.StatusOK},
		{"wrong bearer", map[string]string{"Authorization": "Bearer nope"}, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postRPC(t, handler, tt.headers)
			if w.Code != tt.wantCode {
				t.Errorf("status = %d, want %d", w.Code, tt.wantCode)
			}
		})
	}
}
