package outwriter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
)

// LogTrendsHeader prints a concise, 2-line header for a trends report.
// It goes to stderr so that csv and json output on stdout stays parseable.
func LogTrendsHeader(cfg *contract.Config) {
	repoName := filepath.Base(cfg.RepoPath)
	if repoName == "" || repoName == "." {
		repoName = "current"
	}
	number, _ := schema.ResolveNumber(cfg.Period, cfg.Number)

	// Line 1: The report summary (Repo and Period)
	line := fmt.Sprintf("🔎 Repo: %s (Period: %s x %d, first day: %s)", repoName, cfg.Period, number, cfg.FirstDay)
	if cfg.UseColors {
		line = contract.HeaderColor.Sprint(line)
	}
	_, _ = fmt.Fprintln(os.Stderr, line)

	// Line 2: The filters applied to every bucket
	_, _ = fmt.Fprintf(os.Stderr, "📅 Scope: %s\n", describeScope(cfg))
}

// describeScope summarizes the range, path and commit filters of a config.
func describeScope(cfg *contract.Config) string {
	var parts []string
	if !cfg.NoAll {
		parts = append(parts, "all refs")
	}
	if len(cfg.Range) > 0 {
		parts = append(parts, "range "+strings.Join(cfg.Range, " "))
	} else if cfg.NoAll {
		parts = append(parts, "current branch")
	}
	if len(cfg.Paths) > 0 {
		parts = append(parts, "paths "+strings.Join(cfg.Paths, " "))
	}
	if cfg.Author != "" {
		parts = append(parts, "author "+cfg.Author)
	}
	if !cfg.Merges {
		parts = append(parts, "no merges")
	}
	return strings.Join(parts, ", ")
}
