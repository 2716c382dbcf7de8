package cmd

import (
	"github.com/huangsam/gitcount/core"
	"github.com/huangsam/gitcount/internal/contract"
	"github.com/spf13/cobra"
)

// bucketsCmd prints bucket boundaries without touching history.
var bucketsCmd = &cobra.Command{
	Use:   "buckets",
	Short: "Show the date buckets a trends report would use.",
	Long: `Print the since/until boundaries for the configured period, first day
and number of buckets, most recent first. No git history is read.

Examples:
  # Check how Saturday-based weeks line up
  gitcount buckets --first saturday

  # Monthly boundaries as JSON
  gitcount buckets --period monthly --output json`,
	Args:    cobra.NoArgs,
	PreRunE: offlineSetup,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteBuckets(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot compute buckets", err)
		}
	},
}
