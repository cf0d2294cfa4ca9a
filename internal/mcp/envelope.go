package mcp

import (
	"fmt"

	"github.com/gitweather/gitweather-mcp-server/internal/protocol"
)

// TextResult wraps formatted display text as a successful envelope with
// a single text content block.
func TextResult(text string) protocol.CallResult {
	return protocol.CallResult{
		Content: []protocol.ContentPart{{Type: "text", Text: text}},
	}
}

// ErrorResult wraps a diagnostic message, carried verbatim, as a failed
// envelope.
func ErrorResult(message string) protocol.CallResult {
	return protocol.CallResult{
		Content: []protocol.ContentPart{{Type: "text", Text: message}},
		IsError: true,
	}
}

// FailureResult reports a handler failure in the uniform
// "Error: <message>" form.
func FailureResult(err error) protocol.CallResult {
	return ErrorResult(fmt.Sprintf("Error: %v", err))
}
