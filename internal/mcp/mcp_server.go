// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/heatpump/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Tool names registered by the server.
const (
	SummarizeTool = "summarize_heatpump_csv"
	ColumnsTool   = "list_heatpump_columns"
)

// NewMCPServer initializes and configures the heatpump MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"Heatpump Summary Server",
		version,
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: summarize_heatpump_csv ---
	s.AddTool(mcp.NewTool(SummarizeTool,
		mcp.WithDescription("Merge one or two heat-pump CSV exports, filter them to a date window and return sums, averages and efficiency as JSON."),
		mcp.WithString("file_a", mcp.Description("Path to the first CSV export."), mcp.Required()),
		mcp.WithString("file_b", mcp.Description("Path to an optional second CSV export. Rows of file_a win on duplicate dates.")),
		mcp.WithString("start", mcp.Description("First day of the window (YYYY-MM-DD). Defaults to the earliest date.")),
		mcp.WithString("end", mcp.Description("Last day of the window (YYYY-MM-DD). Defaults to the latest date.")),
	), h.handleSummarize)

	// --- 2. Tool: list_heatpump_columns ---
	s.AddTool(mcp.NewTool(ColumnsTool,
		mcp.WithDescription("List the required CSV columns and how each is aggregated."),
	), h.handleListColumns)

	return s
}

// StartMCPServer starts the heatpump MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, version string) error {
	s := NewMCPServer(baseCfg, version)
	return server.ServeStdio(s)
}
