package contract

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gitcount/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// validInput returns the raw input the CLI produces with no flags set.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		RepoPathStr: ".",
		Output:      "text",
		Timeout:     "60s",
		Color:       "yes",
		Period:      "weekly",
		First:       "monday",
		Merges:      true,
	}
}

func TestProcessAndValidate(t *testing.T) {
	workDir, err := filepath.Abs(".")
	require.NoError(t, err)

	tests := []struct {
		name        string
		modify      func(*ConfigRawInput)
		expectError bool
		check       func(*testing.T, *Config)
	}{
		{
			name: "defaults",
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/mock/repo/root", cfg.RepoPath)
				assert.Equal(t, schema.WeeklyPeriod, cfg.Period)
				assert.Equal(t, schema.MondayFirst, cfg.FirstDay)
				assert.Equal(t, 8, cfg.Number)
				assert.Equal(t, schema.TextOut, cfg.Output)
				assert.Equal(t, time.Minute, cfg.Timeout)
				assert.True(t, cfg.UseColors)
				assert.True(t, cfg.Merges)
				assert.Empty(t, cfg.Paths)
			},
		},
		{
			name: "abbreviated period and first day",
			modify: func(in *ConfigRawInput) {
				in.Period = "M"
				in.First = "sun"
				in.Number = 3
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, schema.MonthlyPeriod, cfg.Period)
				assert.Equal(t, schema.SundayFirst, cfg.FirstDay)
				assert.Equal(t, 3, cfg.Number)
			},
		},
		{
			name: "range and paths are split on whitespace",
			modify: func(in *ConfigRawInput) {
				in.Range = "v1.0..main  feature"
				in.Paths = "core internal"
				in.Author = "  alice  "
			},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, []string{"v1.0..main", "feature"}, cfg.Range)
				assert.Equal(t, []string{"core", "internal"}, cfg.Paths)
				assert.Equal(t, "alice", cfg.Author)
			},
		},
		{
			name:        "invalid period",
			modify:      func(in *ConfigRawInput) { in.Period = "hourly" },
			expectError: true,
		},
		{
			name:        "invalid first day",
			modify:      func(in *ConfigRawInput) { in.First = "friday" },
			expectError: true,
		},
		{
			name:        "negative number",
			modify:      func(in *ConfigRawInput) { in.Number = -2 },
			expectError: true,
		},
		{
			name:        "invalid output",
			modify:      func(in *ConfigRawInput) { in.Output = "xml" },
			expectError: true,
		},
		{
			name:        "parquet without output file",
			modify:      func(in *ConfigRawInput) { in.Output = "parquet" },
			expectError: true,
		},
		{
			name:        "invalid timeout",
			modify:      func(in *ConfigRawInput) { in.Timeout = "soon" },
			expectError: true,
		},
		{
			name:        "non-positive timeout",
			modify:      func(in *ConfigRawInput) { in.Timeout = "0s" },
			expectError: true,
		},
		{
			name:        "invalid color",
			modify:      func(in *ConfigRawInput) { in.Color = "maybe" },
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			if tt.modify != nil {
				tt.modify(input)
			}
			client := new(MockGitClient)
			client.On("GetRepoRoot", mock.Anything, workDir).Return("/mock/repo/root", nil).Maybe()

			cfg := &Config{}
			err := ProcessAndValidate(context.Background(), cfg, client, input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestProcessAndValidateSubdirectoryFilter(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "pkg", "util")
	require.NoError(t, os.MkdirAll(sub, 0o755))

	client := new(MockGitClient)
	client.On("GetRepoRoot", mock.Anything, sub).Return(root, nil)

	input := validInput()
	input.RepoPathStr = sub
	cfg := &Config{}
	require.NoError(t, ProcessAndValidate(context.Background(), cfg, client, input))
	assert.Equal(t, root, cfg.RepoPath)
	assert.Equal(t, []string{"pkg/util"}, cfg.Paths)

	// An explicit --paths wins over the implicit subdirectory filter
	input.Paths = "docs"
	cfg = &Config{}
	require.NoError(t, ProcessAndValidate(context.Background(), cfg, client, input))
	assert.Equal(t, []string{"docs"}, cfg.Paths)
}

func TestProcessOfflineInputs(t *testing.T) {
	input := validInput()
	input.Period = "daily"
	cfg := &Config{}
	require.NoError(t, ProcessOfflineInputs(cfg, input))
	assert.Equal(t, schema.DailyPeriod, cfg.Period)
	assert.Equal(t, 14, cfg.Number)
	assert.Empty(t, cfg.RepoPath, "offline inputs should not resolve a repository")
}

func TestRevalidateTrends(t *testing.T) {
	base := &Config{Period: schema.MonthlyPeriod, FirstDay: schema.SundayFirst, Number: 3}

	cfg := base.Clone()
	require.NoError(t, RevalidateTrends(cfg, "", "", 0))
	assert.Equal(t, schema.MonthlyPeriod, cfg.Period)
	assert.Equal(t, schema.SundayFirst, cfg.FirstDay)
	assert.Equal(t, 3, cfg.Number, "zero number should keep the configured count")

	cfg = base.Clone()
	require.NoError(t, RevalidateTrends(cfg, "monthly", "", 0))
	assert.Equal(t, 3, cfg.Number, "restating the configured period should keep the configured count")

	cfg = base.Clone()
	require.NoError(t, RevalidateTrends(cfg, "weekly", "", 0))
	assert.Equal(t, schema.WeeklyPeriod, cfg.Period)
	assert.Equal(t, 8, cfg.Number, "a new period with zero number should use that period's default")

	cfg = base.Clone()
	require.NoError(t, RevalidateTrends(cfg, "yearly", "sat", 2))
	assert.Equal(t, schema.YearlyPeriod, cfg.Period)
	assert.Equal(t, schema.SaturdayFirst, cfg.FirstDay)
	assert.Equal(t, 2, cfg.Number)

	err := RevalidateTrends(base.Clone(), "fortnightly", "", 0)
	assert.ErrorIs(t, err, schema.ErrInvalidConfiguration)
}

func TestConfigClone(t *testing.T) {
	original := &Config{
		RepoPath: "/repo",
		Range:    []string{"main"},
		Paths:    []string{"core"},
	}
	clone := original.Clone()
	clone.Range[0] = "dev"
	clone.Paths = append(clone.Paths, "cmd")

	assert.Equal(t, []string{"main"}, original.Range)
	assert.Equal(t, []string{"core"}, original.Paths)
	assert.Equal(t, "/repo", clone.RepoPath)
}
