package server

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/yushinna/screenshot-mcp/internal/capture"
)

const (
	serverName    = "screenshot-mcp"
	serverVersion = "1.0.0"
)

// NewMCP builds the MCP server with all four screenshot tools registered
// against the given adapter.
func NewMCP(a *capture.Adapter) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(serverName, serverVersion, mcpserver.WithToolCapabilities(false))

	s.AddTool(screenshotTool(), func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := a.CaptureFull(ctx, req.GetString("filename", ""), req.GetInt("delay", 0))
		return toolResult(text, err), nil
	})
	s.AddTool(windowTool(), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := a.CaptureWindow(req.GetString("filename", ""))
		return toolResult(text, err), nil
	})
	s.AddTool(areaTool(), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := a.CaptureArea(req.GetString("filename", ""))
		return toolResult(text, err), nil
	})
	s.AddTool(listTool(), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, err := a.List(req.GetInt("limit", capture.DefaultListLimit))
		return toolResult(text, err), nil
	})

	return s
}

// ServeStdio runs the MCP server over stdin/stdout until the stream closes.
// stdout carries only protocol frames; logging goes to the given logger.
func ServeStdio(a *capture.Adapter, log *slog.Logger) error {
	log.Info("serving MCP over stdio", "dir", a.Dir())
	return mcpserver.ServeStdio(NewMCP(a))
}

// toolResult converts an adapter outcome into a tool result. Failures become
// error-flagged text, so the protocol layer never sees a raw Go error.
func toolResult(text string, err error) *mcp.CallToolResult {
	if err != nil {
		return mcp.NewToolResultError("Error: " + err.Error())
	}
	return mcp.NewToolResultText(text)
}

func screenshotTool() mcp.Tool {
	return mcp.NewTool("screenshot",
		mcp.WithDescription("Capture a screenshot of the entire desktop"),
		mcp.WithString("filename", mcp.Description("Filename to save (auto-generated if omitted)")),
		mcp.WithNumber("delay", mcp.Description("Delay in seconds before capture (default: 0)"), mcp.DefaultNumber(0)),
	)
}

func windowTool() mcp.Tool {
	return mcp.NewTool("screenshot_window",
		mcp.WithDescription("Capture a screenshot of a specific window (interactive selection)"),
		mcp.WithString("filename", mcp.Description("Filename to save (auto-generated if omitted)")),
	)
}

func areaTool() mcp.Tool {
	return mcp.NewTool("screenshot_area",
		mcp.WithDescription("Capture a screenshot of a selected area (interactive selection)"),
		mcp.WithString("filename", mcp.Description("Filename to save (auto-generated if omitted)")),
	)
}

func listTool() mcp.Tool {
	return mcp.NewTool("list_screenshots",
		mcp.WithDescription("List saved screenshots"),
		mcp.WithNumber("limit", mcp.Description("Maximum number of screenshots to list (default: 10)"), mcp.DefaultNumber(capture.DefaultListLimit)),
	)
}

// toolCatalog is the fixed tool surface, shared by both transports.
func toolCatalog() []mcp.Tool {
	return []mcp.Tool{screenshotTool(), windowTool(), areaTool(), listTool()}
}
