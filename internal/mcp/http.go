package mcp

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

// NewRouter builds the HTTP transport for an MCP server: one JSON-RPC
// request per POST to the root path.
func NewRouter(server *Server) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Post("/", func(w http.ResponseWriter, req *http.Request) {
		var rpc protocol.Request
		if err := json.NewDecoder(req.Body).Decode(&rpc); err != nil {
			writeJSON(w, errorResponse(nil, -32700, "invalid JSON"), http.StatusBadRequest)
			return
		}
		writeJSON(w, server.Handle(req.Context(), rpc), http.StatusOK)
	})

	return r
}

// RunHTTP serves MCP JSON-RPC over HTTP on addr. It blocks until the
// listener fails.
func RunHTTP(server *Server, addr string) error {
	return http.ListenAndServe(addr, NewRouter(server))
}

func writeJSON(w http.ResponseWriter, resp protocol.Response, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(resp)
}
