package mcp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

func TestRouterHealth(t *testing.T) {
	s, _ := testServer()
	r := NewRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
}

func TestRouterJSONRPCRoundTrip(t *testing.T) {
	s, _ := testServer()
	r := NewRouter(s)

	body := []byte(`{"jsonrpc":"2.0","id":1,"method":"tools/call","params":{"name":"echo","arguments":{"msg":"hi"}}}`)
	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Result protocol.CallResult `json:"result"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Result.IsError || resp.Result.Content[0].Text != "hi" {
		t.Fatalf("unexpected result: %+v", resp.Result)
	}
}

func TestRouterRejectsInvalidJSON(t *testing.T) {
	s, _ := testServer()
	r := NewRouter(s)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{nope")))
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestRouterRejectsNonPost(t *testing.T) {
	s, _ := testServer()
	r := NewRouter(s)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rr.Code)
	}
}
