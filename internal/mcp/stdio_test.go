package mcp

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

func TestServeStdioAnswersEachRequest(t *testing.T) {
	s, _ := testServer()
	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"echo","arguments":{"msg":"hi"}}}`,
	}, "\n") + "\n")
	var out bytes.Buffer

	if err := ServeStdio(context.Background(), s, in, &out, nil); err != nil {
		t.Fatalf("serve: %v", err)
	}

	var lines []string
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	// The notification gets no reply.
	if len(lines) != 3 {
		t.Fatalf("expected 3 responses, got %d: %v", len(lines), lines)
	}

	var last struct {
		ID     float64             `json:"id"`
		Result protocol.CallResult `json:"result"`
	}
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("decode last response: %v", err)
	}
	if last.ID != 3 || last.Result.IsError || last.Result.Content[0].Text != "hi" {
		t.Fatalf("unexpected last response: %+v", last)
	}
}

func TestServeStdioInvalidJSONKeepsServing(t *testing.T) {
	s, _ := testServer()
	in := strings.NewReader("{garbage\n" + `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out bytes.Buffer

	if err := ServeStdio(context.Background(), s, in, &out, nil); err != nil {
		t.Fatalf("serve: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 responses, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "-32700") {
		t.Fatalf("expected parse error first, got %q", lines[0])
	}
	if !strings.Contains(lines[1], `"id":"1"`) && !strings.Contains(lines[1], `"id":1`) {
		t.Fatalf("expected ping response, got %q", lines[1])
	}
}

func TestServeStdioStopsOnCancelledContext(t *testing.T) {
	s, _ := testServer()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	in := strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n")
	var out bytes.Buffer

	if err := ServeStdio(ctx, s, in, &out, nil); err == nil {
		t.Fatal("expected context error")
	}
}
