// Package cmd defines the command-line interface for gitcount.
package cmd

import (
	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(trendsCmd)
	rootCmd.AddCommand(bucketsCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("timeout", contract.DefaultGitTimeout.String(), "Timeout for each git invocation")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")

	// Bucketing and scope flags are shared by every reporting command
	rootCmd.PersistentFlags().StringP("author", "a", "", "Only count commits whose author matches this pattern")
	rootCmd.PersistentFlags().StringP("period", "p", string(schema.WeeklyPeriod), "Bucket size: daily or weekly or monthly or yearly")
	rootCmd.PersistentFlags().String("first", string(schema.MondayFirst), "First day of a weekly bucket: monday or sunday or saturday")
	rootCmd.PersistentFlags().IntP("number", "n", 0, "Number of buckets (0 = period default: 14 daily, 8 weekly, 12 monthly, 5 yearly)")
	rootCmd.PersistentFlags().String("range", "", "Space-separated git revision arguments, e.g. 'v1.0..v2.0'")
	rootCmd.PersistentFlags().String("paths", "", "Space-separated paths that scope every query")
	rootCmd.PersistentFlags().Bool("no-all", false, "Only follow the current branch instead of all refs")
	rootCmd.PersistentFlags().Bool("merges", true, "Include merge commits")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}
}
