package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/huangsam/heatpump/core"
	"github.com/huangsam/heatpump/internal/contract"
	"github.com/huangsam/heatpump/internal/outwriter"
	"github.com/huangsam/heatpump/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

func (h *toolHandler) handleSummarize(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.FileA = request.GetString("file_a", "")
	cfg.FileB = request.GetString("file_b", "")
	if cfg.FileA == "" {
		return mcp.NewToolResultError("file_a is required"), nil
	}
	if err := contract.RevalidateWindow(cfg, request.GetString("start", ""), request.GetString("end", "")); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid date window: %v", err)), nil
	}

	sources, closeAll := core.FileSources(cfg.FileA, cfg.FileB)
	defer closeAll()

	result, err := core.Run(ctx, core.Request{Sources: sources, Start: cfg.Start, End: cfg.End})
	if err != nil {
		var serr *core.SchemaError
		if errors.As(err, &serr) || errors.Is(err, core.ErrNoData) {
			doc := outwriter.NewErrorDocument(result, err, cfg.Precision)
			jsonData, _ := json.MarshalIndent(doc, "", "  ")
			return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v\n%s", err, jsonData)), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(outwriter.NewResultDocument(result, cfg.Precision), "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListColumns(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	jsonData, _ := json.MarshalIndent(schema.KnownColumns, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
