package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
	"github.com/gitweather/gitweather-mcp-server/internal/version"
)

// Server handles MCP JSON-RPC requests against a toolbox. The toolbox
// is fixed at construction; the server itself keeps no per-request
// state.
type Server struct {
	name    string
	toolbox *Toolbox
}

// NewServer wires a toolbox into an MCP server advertised under name.
func NewServer(name string, tb *Toolbox) *Server {
	return &Server{name: name, toolbox: tb}
}

// Handle routes a single request. Tool failures come back inside the
// result envelope; only malformed requests and unknown methods produce
// JSON-RPC errors.
func (s *Server) Handle(ctx context.Context, req protocol.Request) protocol.Response {
	if req.JSONRPC != "" && req.JSONRPC != "2.0" {
		return errorResponse(req.ID, -32600, "invalid jsonrpc version")
	}

	switch req.Method {
	case "initialize":
		return protocol.Response{JSONRPC: "2.0", ID: normalizeID(req.ID), Result: map[string]any{
			"protocolVersion": "2024-11-05",
			"serverInfo": map[string]string{
				"name":    s.name,
				"version": version.Get().Version,
			},
			"capabilities": map[string]any{
				"tools": map[string]any{},
			},
		}}
	case "ping":
		return protocol.Response{JSONRPC: "2.0", ID: normalizeID(req.ID), Result: map[string]any{}}
	case "tools/list":
		return protocol.Response{JSONRPC: "2.0", ID: normalizeID(req.ID), Result: protocol.ListResult{Tools: s.toolbox.Describe()}}
	case "tools/call":
		var params protocol.CallParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, -32602, "invalid params")
		}
		result := s.toolbox.Call(ctx, params.Name, params.Args)
		return protocol.Response{JSONRPC: "2.0", ID: normalizeID(req.ID), Result: result}
	default:
		return errorResponse(req.ID, -32601, "method not found")
	}
}

func errorResponse(id any, code int, message string) protocol.Response {
	return protocol.Response{JSONRPC: "2.0", ID: normalizeID(id), Error: &protocol.ResponseError{Code: code, Message: message}}
}

func normalizeID(id any) any {
	if id == nil {
		return "0"
	}
	switch v := id.(type) {
	case string:
		return v
	case float64:
		return v
	case int, int32, int64, uint32, uint64:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}
