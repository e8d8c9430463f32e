package api

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// RequireAPIKey guards a handler with the configured API key. Clients may
// send the key as a Bearer token or in the X-API-Key header. An empty
// configured key disables the check entirely.
func (s *Server) RequireAPIKey(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.Config.APIKey == "" {
			next(w, r)
			return
		}

		key := r.Header.Get("X-API-Key")
		if key == "" {
			if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
				key = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if subtle.ConstantTimeCompare([]byte(key), []byte(s.Config.APIKey)) != 1 {
			s.Logger.Warn("rejected request with invalid api key",
				zap.String("remote_addr", r.RemoteAddr))
			s.Metrics.IncrementRequests("mcp", r.Method, "401")
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_ = json.NewEncoder(w).Encode(Response{
				JSONRPC: "2.0",
				Error:   rpcError(CodeInvalidRequest, "Invalid Request: unauthorized"),
				ID:      nil,
			})
			return
		}

		next(w, r)
	}
}
