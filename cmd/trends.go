package cmd

import (
	"github.com/huangsam/gitcount/core"
	"github.com/huangsam/gitcount/internal/contract"
	"github.com/spf13/cobra"
)

// trendsCmd reports commits, repository size and churn per bucket.
var trendsCmd = &cobra.Command{
	Use:   "trends [repo-path]",
	Short: "Show commits, repo size and churn per period.",
	Long: `Walk back from today in daily, weekly, monthly or yearly buckets and report,
for each bucket, the commit count, the number of files and lines in the repository
at the end of the bucket, and how many files and lines changed during it.

The most recent bucket is printed first. A bucket with no matching commit
aborts the report since there is no snapshot to measure.

Examples:
  # Last 8 weeks, weeks starting on Monday
  gitcount trends

  # Last 6 months of a subdirectory
  gitcount trends --period monthly --number 6 ./internal

  # Sunday-based weeks for one author, skipping merges
  gitcount trends --first sunday --author alice --merges=false

  # Yearly totals for a release range, exported to CSV
  gitcount trends --period yearly --range "v1.0..main" --output csv --output-file trends.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		client := contract.NewLocalGitClient(cfg.Timeout)
		if err := core.ExecuteTrends(rootCtx, cfg, client); err != nil {
			contract.LogFatal("Cannot run trends report", err)
		}
	},
}
