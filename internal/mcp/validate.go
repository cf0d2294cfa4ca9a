package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

var errArgumentsRequired = errors.New("arguments required")

// validateArgs checks a raw invocation's arguments against a tool's
// input schema. An absent arguments object is rejected for every tool,
// before the schema is consulted. Beyond that only the presence of
// required fields is enforced here; each tool's typed decode rejects
// wrong-kinded values.
func validateArgs(schema *protocol.JSONSchema, raw json.RawMessage) error {
	if len(raw) == 0 || string(raw) == "null" {
		return errArgumentsRequired
	}
	var args map[string]json.RawMessage
	if err := json.Unmarshal(raw, &args); err != nil {
		return errors.New("arguments must be an object")
	}
	if schema == nil {
		return nil
	}
	for _, name := range schema.Required {
		if _, ok := args[name]; !ok {
			return fmt.Errorf("missing field %s", name)
		}
	}
	return nil
}
