package contract

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/huangsam/gitcount/schema"
)

// Config holds the runtime configuration for a trends report.
// This struct remains the "final, validated" config.
type Config struct {
	RepoPath string

	Author   string
	Period   schema.Period
	FirstDay schema.FirstDay
	Number   int      // Bucket count, already resolved against the period default
	Range    []string // Revision arguments; empty means all history
	Paths    []string // Pathspec arguments; empty means the whole tree
	NoAll    bool     // Restrict to the current branch instead of all refs
	Merges   bool     // Include merge commits

	Output     schema.OutputMode
	OutputFile string
	Timeout    time.Duration // Per git invocation

	UseColors bool // Enable colored labels in table output
}

// ConfigRawInput holds the raw inputs from all sources (flags, env, config file).
// Viper unmarshals into this struct.
type ConfigRawInput struct {
	// This is set manually from positional args, so no tag
	RepoPathStr string

	// --- Fields from rootCmd.PersistentFlags() ---
	Output     string `mapstructure:"output"`
	OutputFile string `mapstructure:"output-file"`
	Timeout    string `mapstructure:"timeout"`
	Color      string `mapstructure:"color"`

	// --- Fields from trendsCmd.Flags() and bucketsCmd.Flags() ---
	Author string `mapstructure:"author"`
	Period string `mapstructure:"period"`
	First  string `mapstructure:"first"`
	Number int    `mapstructure:"number"`
	Range  string `mapstructure:"range"`
	Paths  string `mapstructure:"paths"`
	NoAll  bool   `mapstructure:"no-all"`
	Merges bool   `mapstructure:"merges"`
}

// Clone returns a deep copy of the Config struct.
func (c *Config) Clone() *Config {
	clone := *c
	clone.Range = slices.Clone(c.Range)
	clone.Paths = slices.Clone(c.Paths)
	return &clone
}

// ProcessAndValidate performs all parsing and validation on the raw inputs
// and updates the final Config struct.
func ProcessAndValidate(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	if err := ProcessOfflineInputs(cfg, input); err != nil {
		return err
	}
	if err := resolveGitPathAndFilter(ctx, cfg, client, input); err != nil {
		return err
	}
	return nil
}

// ProcessOfflineInputs validates everything except the repository location.
// Commands that never read history use it instead of ProcessAndValidate.
func ProcessOfflineInputs(cfg *Config, input *ConfigRawInput) error {
	if err := validateSimpleInputs(cfg, input); err != nil {
		return err
	}
	return processTrendOptions(cfg, input.Period, input.First, input.Number)
}

// RevalidateTrends re-applies period, first-day and number parsing to a
// cloned config, for callers such as MCP tools that override them per request.
// A zero number keeps the configured count unless the period changes, in which
// case the new period's default applies.
func RevalidateTrends(cfg *Config, period, first string, number int) error {
	if period == "" {
		period = string(cfg.Period)
	}
	if number == 0 {
		if p, err := schema.ParsePeriod(period); err == nil && p == cfg.Period {
			number = cfg.Number
		}
	}
	if first == "" {
		first = string(cfg.FirstDay)
	}
	return processTrendOptions(cfg, period, first, number)
}

// validateSimpleInputs processes and validates all non-bucket fields.
func validateSimpleInputs(cfg *Config, input *ConfigRawInput) error {
	// --- 0. Transfer simple non-validated fields from input -> cfg ---
	cfg.Author = strings.TrimSpace(input.Author)
	cfg.OutputFile = input.OutputFile
	cfg.NoAll = input.NoAll
	cfg.Merges = input.Merges
	cfg.Range = strings.Fields(input.Range)
	cfg.Paths = strings.Fields(input.Paths)

	// --- 1. Color ---
	colors, err := ParseBoolString(input.Color)
	if err != nil {
		return fmt.Errorf("invalid --color value: %w", err)
	}
	cfg.UseColors = colors

	// --- 2. Output ---
	cfg.Output = schema.OutputMode(strings.ToLower(input.Output))
	if _, ok := schema.ValidOutputModes[cfg.Output]; !ok {
		return fmt.Errorf("invalid output format '%s'. must be text, csv, json, parquet", input.Output)
	}
	if cfg.Output == schema.ParquetOut && cfg.OutputFile == "" {
		return fmt.Errorf("--output-file is required for parquet output")
	}

	// --- 3. Timeout ---
	cfg.Timeout = DefaultGitTimeout
	if input.Timeout != "" {
		timeout, err := time.ParseDuration(input.Timeout)
		if err != nil {
			return fmt.Errorf("invalid --timeout value '%s': %w", input.Timeout, err)
		}
		if timeout <= 0 {
			return fmt.Errorf("timeout must be greater than 0 (received %s)", input.Timeout)
		}
		cfg.Timeout = timeout
	}

	return nil
}

// processTrendOptions resolves the bucketing parameters.
func processTrendOptions(cfg *Config, period, first string, number int) error {
	p, err := schema.ParsePeriod(period)
	if err != nil {
		return err
	}
	f, err := schema.ParseFirstDay(first)
	if err != nil {
		return err
	}
	n, err := schema.ResolveNumber(p, number)
	if err != nil {
		return err
	}
	cfg.Period = p
	cfg.FirstDay = f
	cfg.Number = n
	return nil
}

// resolveGitPathAndFilter resolves the Git repository path and sets the implicit path filter
// when the positional path points below the repository root.
func resolveGitPathAndFilter(ctx context.Context, cfg *Config, client GitClient, input *ConfigRawInput) error {
	searchPath := input.RepoPathStr
	if searchPath == "" {
		searchPath = "."
	}
	absSearchPath, err := filepath.Abs(searchPath)
	if err != nil {
		return err
	}
	absSearchPath = filepath.Clean(absSearchPath)

	info, statErr := os.Stat(absSearchPath)
	gitContextPath := absSearchPath
	if statErr == nil && !info.IsDir() {
		gitContextPath = filepath.Dir(absSearchPath)
	}

	gitRoot, err := client.GetRepoRoot(ctx, gitContextPath)
	if err != nil {
		return err
	}

	cfg.RepoPath = gitRoot

	if len(cfg.Paths) > 0 { // User-provided --paths flag takes precedence
		return nil
	}

	if absSearchPath != gitRoot {
		relativePath, err := filepath.Rel(gitRoot, absSearchPath)
		if err != nil {
			return err
		}
		if relativePath != "." {
			cfg.Paths = []string{strings.ReplaceAll(relativePath, string(os.PathSeparator), "/")}
		}
	}

	return nil
}
