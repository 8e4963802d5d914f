package server

// CallRequest is the body of an HTTP tool invocation.
type CallRequest struct {
	Name string         `json:"name"`
	Args map[string]any `json:"arguments"`
}

// TextContent is one text block of a tool result.
type TextContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// CallResult is the HTTP response body for a tool invocation, shaped like
// an MCP tool result so HTTP and stdio callers see the same thing.
type CallResult struct {
	Content []TextContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

func textResult(text string) CallResult {
	return CallResult{Content: []TextContent{{Type: "text", Text: text}}}
}

func errorResult(text string) CallResult {
	return CallResult{Content: []TextContent{{Type: "text", Text: text}}, IsError: true}
}
