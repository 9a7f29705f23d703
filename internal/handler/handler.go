package handler

import (
	"encoding/json"
	"net/http"
)

// Handler carries cross-cutting HTTP configuration.
type Handler struct {
	allowedOrigin string
}

// New creates a Handler. allowedOrigin is the origin permitted to call the
// API; "*" allows any, which is the expected setup since the form is posted
// from a separately hosted static site.
func New(allowedOrigin string) *Handler {
	if allowedOrigin == "" {
		allowedOrigin = "*"
	}
	return &Handler{allowedOrigin: allowedOrigin}
}

// CORS adds cross-origin headers to every response and short-circuits
// preflight requests.
func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.allowedOrigin)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Accept")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes v as a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
