package cmd

import (
	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:     "mcp [repo-path]",
	Short:   "Start the gitcount MCP server",
	Long:    `Launch an MCP server that allows AI agents to request trends reports via standard tools.`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, contract.NewLocalGitClient(cfg.Timeout))
	},
}
