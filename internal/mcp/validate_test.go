package mcp

import (
	"encoding/json"
	"testing"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

func TestValidateArgs(t *testing.T) {
	schema := &protocol.JSONSchema{
		Type: "object",
		Properties: map[string]protocol.JSONSchema{
			"city": {Type: "string"},
			"days": {Type: "number"},
		},
		Required: []string{"city"},
	}

	cases := []struct {
		name    string
		schema  *protocol.JSONSchema
		raw     json.RawMessage
		wantErr string
	}{
		{"absent arguments", schema, nil, "arguments required"},
		{"null arguments", schema, json.RawMessage(`null`), "arguments required"},
		{"absent even without schema", nil, nil, "arguments required"},
		{"non-object arguments", schema, json.RawMessage(`[1,2]`), "arguments must be an object"},
		{"missing required", schema, json.RawMessage(`{"days":3}`), "missing field city"},
		{"required present", schema, json.RawMessage(`{"city":"Paris"}`), ""},
		{"extra fields pass through", schema, json.RawMessage(`{"city":"Paris","units":"F"}`), ""},
		{"wrong kind passes this layer", schema, json.RawMessage(`{"city":42}`), ""},
		{"no schema accepts any object", nil, json.RawMessage(`{}`), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateArgs(tc.schema, tc.raw)
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || err.Error() != tc.wantErr {
				t.Fatalf("expected %q, got %v", tc.wantErr, err)
			}
		})
	}
}
