package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

// ServeStdio reads line-delimited JSON-RPC requests from in and writes
// one response per request to out. Notifications get no reply. The loop
// ends when in is exhausted; a write failure or read error is returned
// to the caller, which treats it as a transport fault.
func ServeStdio(ctx context.Context, server *Server, in io.Reader, out io.Writer, log *logrus.Entry) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var req protocol.Request
		if err := json.Unmarshal([]byte(line), &req); err != nil {
			if err := enc.Encode(errorResponse(nil, -32700, "invalid JSON")); err != nil {
				return fmt.Errorf("write response: %w", err)
			}
			continue
		}
		if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
			continue
		}
		resp := server.Handle(ctx, req)
		if log != nil {
			log.WithField("method", req.Method).Debug("handled request")
		}
		if err := enc.Encode(resp); err != nil {
			return fmt.Errorf("write response: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}

// RunStdio serves MCP over the process's stdin and stdout. Stdout
// belongs to the protocol; diagnostics must go to the logger or stderr.
func RunStdio(ctx context.Context, server *Server, log *logrus.Entry) error {
	return ServeStdio(ctx, server, os.Stdin, os.Stdout, log)
}
