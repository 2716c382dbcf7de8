package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/huangsam/gitcount/core"
	"github.com/huangsam/gitcount/core/period"
	"github.com/huangsam/gitcount/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	client  contract.GitClient
}

// requestConfig applies the bucketing arguments of a request to a copy of the base config.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	err := contract.RevalidateTrends(cfg,
		request.GetString("period", ""),
		request.GetString("first", ""),
		request.GetInt("number", 0),
	)
	return cfg, err
}

func (h *toolHandler) handleGetTrends(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid trends parameters: %v", err)), nil
	}
	if p := request.GetString("repo_path", ""); p != "" {
		root, err := h.client.GetRepoRoot(ctx, p)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid repo_path: %v", err)), nil
		}
		cfg.RepoPath = root
	}
	if a := request.GetString("author", ""); a != "" {
		cfg.Author = a
	}
	if r := request.GetString("range", ""); r != "" {
		cfg.Range = strings.Fields(r)
	}
	if p := request.GetString("paths", ""); p != "" {
		cfg.Paths = strings.Fields(p)
	}
	cfg.NoAll = request.GetBool("no_all", cfg.NoAll)
	cfg.Merges = request.GetBool("merges", cfg.Merges)

	result, _, err := core.GetTrendsResults(core.WithSuppressHeader(ctx), cfg, h.client)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("trends report failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetBuckets(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("invalid bucket parameters: %v", err)), nil
	}

	buckets, err := period.Buckets(cfg.Period, cfg.FirstDay, cfg.Number, time.Now())
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("bucketing failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(buckets, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
