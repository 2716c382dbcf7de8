// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/gitcount/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the gitcount MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, client contract.GitClient) *server.MCPServer {
	s := server.NewMCPServer(
		"gitcount Trends Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		client:  client,
	}

	// --- 1. Tool: get_trends ---
	s.AddTool(mcp.NewTool("get_trends",
		mcp.WithDescription("Report commits, repository size and churn per time bucket, most recent bucket first."),
		mcp.WithString("repo_path", mcp.Description("Path inside a Git repository (defaults to the repository the server was started for).")),
		mcp.WithString("period", mcp.Description("Bucket size. Defaults to 'weekly'."), mcp.Enum("daily", "weekly", "monthly", "yearly")),
		mcp.WithString("first", mcp.Description("First day of a weekly bucket. Defaults to 'monday'."), mcp.Enum("monday", "sunday", "saturday")),
		mcp.WithNumber("number", mcp.Description("Number of buckets (defaults to 14 daily, 8 weekly, 12 monthly, 5 yearly).")),
		mcp.WithString("author", mcp.Description("Only count commits whose author matches this pattern.")),
		mcp.WithString("range", mcp.Description("Git revision range, e.g. 'main' or 'v1.0..v2.0'.")),
		mcp.WithString("paths", mcp.Description("Space-separated paths that scope every query.")),
		mcp.WithBoolean("no_all", mcp.Description("Only follow the current branch instead of all refs.")),
		mcp.WithBoolean("merges", mcp.Description("Include merge commits. Defaults to true.")),
	), h.handleGetTrends)

	// --- 2. Tool: get_buckets ---
	s.AddTool(mcp.NewTool("get_buckets",
		mcp.WithDescription("List the bucket boundaries a trends report would use, without querying git."),
		mcp.WithString("period", mcp.Description("Bucket size."), mcp.Enum("daily", "weekly", "monthly", "yearly")),
		mcp.WithString("first", mcp.Description("First day of a weekly bucket."), mcp.Enum("monday", "sunday", "saturday")),
		mcp.WithNumber("number", mcp.Description("Number of buckets.")),
	), h.handleGetBuckets)

	return s
}

// StartMCPServer starts the gitcount MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, client contract.GitClient) error {
	s := NewMCPServer(baseCfg, client)
	return server.ServeStdio(s)
}
