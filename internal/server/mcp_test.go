package server

import (
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yushinna/screenshot-mcp/internal/capture"
)

func TestToolResultSuccess(t *testing.T) {
	res := toolResult("Screenshot saved successfully", nil)
	require.Len(t, res.Content, 1)
	assert.False(t, res.IsError)

	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Screenshot saved successfully", tc.Text)
}

func TestToolResultError(t *testing.T) {
	res := toolResult("", errors.New("failed to capture screenshot: boom"))
	require.Len(t, res.Content, 1)
	assert.True(t, res.IsError)

	tc, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "Error: failed to capture screenshot: boom", tc.Text)
}

func TestNewMCPRegistersTools(t *testing.T) {
	adapter, err := capture.New(capture.Config{Dir: t.TempDir()}, &fakeRunner{}, nil)
	require.NoError(t, err)
	require.NotNil(t, NewMCP(adapter))
}

func TestToolCatalogNames(t *testing.T) {
	catalog := toolCatalog()
	require.Len(t, catalog, 4)
	names := make([]string, 0, len(catalog))
	for _, tool := range catalog {
		names = append(names, tool.Name)
	}
	assert.Equal(t, []string{"screenshot", "screenshot_window", "screenshot_area", "list_screenshots"}, names)
}
