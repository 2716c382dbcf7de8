package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// All linker flags will be set by goreleaser infra at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootCtx is the root context for all operations.
var rootCtx = context.Background()

// cfg will hold the validated, final configuration.
var cfg = &contract.Config{}

// input holds the raw, unvalidated configuration from all sources (file, env, flags).
// Viper will unmarshal into this struct.
var input = &contract.ConfigRawInput{}

// rootCmd is the command-line entrypoint for all other commands.
var rootCmd = &cobra.Command{
	Use:                "gitcount",
	Short:              "Report commits, repository size and churn over time.",
	Long:               `Gitcount walks back through successive days, weeks, months or years and reports how much a Git repository grew and changed in each.`,
	Version:            version,
	SilenceErrors:      true,
	SilenceUsage:       true,
	DisableSuggestions: true,
	Run: func(cmd *cobra.Command, _ []string) {
		_ = cmd.Help()
	},
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// Check if a specific config file is provided
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		viper.SetConfigName(".gitcount") // Name of config file (without extension)
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME")
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("GITCOUNT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Set defaults in Viper
	viper.SetDefault("output", schema.TextOut)
	viper.SetDefault("timeout", contract.DefaultGitTimeout.String())
	viper.SetDefault("color", "yes")
	viper.SetDefault("period", schema.WeeklyPeriod)
	viper.SetDefault("first", schema.MondayFirst)
	viper.SetDefault("number", 0)
	viper.SetDefault("merges", true)
}

// loadInput merges config sources into the raw input struct.
func loadInput(args []string) error {
	// 1. Read config file. This merges defaults, file, env, and flags.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	// 2. Unmarshal all resolved values from Viper into our raw input struct.
	if err := viper.Unmarshal(input); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	// 3. Handle positional arguments (which Viper doesn't do).
	if len(args) == 1 {
		input.RepoPathStr = args[0]
	} else {
		input.RepoPathStr = "."
	}

	return nil
}

// sharedSetup unmarshals config and runs validation.
func sharedSetup(ctx context.Context, _ *cobra.Command, args []string) error {
	if err := loadInput(args); err != nil {
		return err
	}
	client := contract.NewLocalGitClient(contract.DefaultGitTimeout)
	return contract.ProcessAndValidate(ctx, cfg, client, input)
}

// offlineSetup is sharedSetup for commands that do not need a repository.
func offlineSetup(_ *cobra.Command, args []string) error {
	if err := loadInput(args); err != nil {
		return err
	}
	return contract.ProcessOfflineInputs(cfg, input)
}

// sharedSetupWrapper wraps sharedSetup to provide context for Cobra's PreRunE.
func sharedSetupWrapper(cmd *cobra.Command, args []string) error {
	return sharedSetup(rootCtx, cmd, args)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
