package main

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/AlexLin1234/chicago-art-museum-mcp-server/internal/aic"
	"github.com/AlexLin1234/chicago-art-museum-mcp-server/internal/common"
)

// --- Helpers ---

func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}

// --- Handlers ---

// handleTool routes an MCP tool call through the dispatcher. The handler
// never returns a Go error; failures arrive as error-flagged text results
// so the MCP loop always produces a reply.
func handleTool(d *aic.Dispatcher, name string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		text, isError := d.Dispatch(ctx, name, request.GetArguments())
		if isError {
			return errorResult(text), nil
		}
		return textResult(text), nil
	}
}

func handleGetVersion() server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		result := fmt.Sprintf("AIC MCP Server\nVersion: %s\nBuild: %s\nCommit: %s\nStatus: OK",
			common.Version, common.Build, common.GitCommit)
		return textResult(result), nil
	}
}
