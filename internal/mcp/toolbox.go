package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool. Invoke receives
// arguments that already passed the presence check and returns formatted
// display text, or an error describing why the call failed.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) (string, error)
}

// Toolbox holds the tool catalog and dispatches invocations by name.
// It is populated once at construction and read-only afterwards.
type Toolbox struct {
	order []string
	tools map[string]Tool
}

// NewToolbox constructs a toolbox with the provided tools, preserving
// registration order. Registering two tools under the same name is a
// programming error and panics.
func NewToolbox(tools ...Tool) *Toolbox {
	tb := &Toolbox{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		desc := t.Descriptor()
		if _, dup := tb.tools[desc.Name]; dup {
			panic(fmt.Sprintf("toolbox: duplicate tool %q", desc.Name))
		}
		tb.order = append(tb.order, desc.Name)
		tb.tools[desc.Name] = t
	}
	return tb
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call dispatches a named tool invocation. Every failure mode — unknown
// name, invalid arguments, handler error — becomes an error envelope;
// nothing a handler does can surface as a protocol fault or crash the
// process.
func (tb *Toolbox) Call(ctx context.Context, name string, raw json.RawMessage) protocol.CallResult {
	tool, ok := tb.tools[name]
	if !ok {
		return ErrorResult(fmt.Sprintf("Unknown tool: %s", name))
	}
	if err := validateArgs(tool.Descriptor().InputSchema, raw); err != nil {
		return ErrorResult(err.Error())
	}
	text, err := tool.Invoke(ctx, raw)
	if err != nil {
		return FailureResult(err)
	}
	return TextResult(text)
}
