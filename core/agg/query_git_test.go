package agg

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfGitNotAvailable skips the test if git binary is not found in PATH
func skipIfGitNotAvailable(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skipf("git binary not found in PATH: %v", err)
	}
}

// gitAt runs git in dir with author and committer dates pinned to when.
func gitAt(t *testing.T, dir string, when string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", append([]string{"-C", dir}, args...)...)
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Alice", "GIT_AUTHOR_EMAIL=alice@example.com",
		"GIT_COMMITTER_NAME=Alice", "GIT_COMMITTER_EMAIL=alice@example.com",
		"GIT_AUTHOR_DATE="+when, "GIT_COMMITTER_DATE="+when,
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v: %s", args, out)
}

// newHistoryRepo creates a repository with one commit in each of two weeks.
func newHistoryRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	gitAt(t, dir, "2024-05-07T12:00:00+00:00", "init", "-q")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\ntwo\nthree\n"), 0o644))
	gitAt(t, dir, "2024-05-07T12:00:00+00:00", "add", "a.txt")
	gitAt(t, dir, "2024-05-07T12:00:00+00:00", "commit", "-q", "-m", "add a")

	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("four\nfive\n"), 0o644))
	gitAt(t, dir, "2024-05-14T12:00:00+00:00", "add", "b.txt")
	gitAt(t, dir, "2024-05-14T12:00:00+00:00", "commit", "-q", "-m", "add b")
	return dir
}

func TestQuerierAgainstGit(t *testing.T) {
	skipIfGitNotAvailable(t)

	repo := newHistoryRepo(t)
	q := NewQuerier(contract.NewLocalGitClient(0), repo, nil, nil)
	ctx := context.Background()
	base := LogOptions{All: true}

	tests := []struct {
		name         string
		bucket       schema.Bucket
		commits      int
		files        int
		lines        int
		filesChanged int
		linesChanged int
	}{
		{
			name: "second week",
			bucket: schema.Bucket{
				Since: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
				Until: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
			},
			commits: 1, files: 2, lines: 5, filesChanged: 1, linesChanged: 2,
		},
		{
			name: "first week",
			bucket: schema.Bucket{
				Since: time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
				Until: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
			},
			commits: 1, files: 1, lines: 3, filesChanged: 1, linesChanged: 3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := base.WithWindow(tt.bucket)

			commits, err := q.CommitCount(ctx, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.commits, commits)

			files, err := q.RepoFileCount(ctx, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.files, files)

			lines, err := q.RepoLineCount(ctx, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.lines, lines)

			filesChanged, linesChanged, err := q.Churn(ctx, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.filesChanged, filesChanged)
			assert.Equal(t, tt.linesChanged, linesChanged)
		})
	}

	t.Run("empty window has no snapshot", func(t *testing.T) {
		opts := base.WithWindow(schema.Bucket{
			Since: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
			Until: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
		})
		commits, err := q.CommitCount(ctx, opts)
		require.NoError(t, err)
		assert.Equal(t, 0, commits)

		_, err = q.RepoFileCount(ctx, opts)
		assert.ErrorIs(t, err, schema.ErrBackendQueryFailed)
	})
}

func TestQuerierGlobPathFilterAgainstGit(t *testing.T) {
	skipIfGitNotAvailable(t)

	dir := t.TempDir()
	when := "2024-05-14T12:00:00+00:00"
	gitAt(t, dir, when, "init", "-q")
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "cmd"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.go"), []byte("package a\n\nfunc A() {}\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cmd", "main.go"), []byte("package main\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("one\ntwo\n"), 0o644))
	gitAt(t, dir, when, "add", ".")
	gitAt(t, dir, when, "commit", "-q", "-m", "mixed files")

	opts := LogOptions{All: true}.WithWindow(schema.Bucket{
		Since: time.Date(2024, 5, 13, 0, 0, 0, 0, time.UTC),
		Until: time.Date(2024, 5, 20, 0, 0, 0, 0, time.UTC),
	})
	ctx := context.Background()

	tests := []struct {
		name         string
		paths        []string
		files        []string
		lines        int
		filesChanged int
		linesChanged int
	}{
		{
			name:         "glob matches at any depth",
			paths:        []string{"*.go"},
			files:        []string{"a.go", "cmd/main.go"},
			lines:        4,
			filesChanged: 2,
			linesChanged: 4,
		},
		{
			name:         "directory prefix",
			paths:        []string{"cmd"},
			files:        []string{"cmd/main.go"},
			lines:        1,
			filesChanged: 1,
			linesChanged: 1,
		},
		{
			name:         "exclude magic",
			paths:        []string{".", ":(exclude)*.go"},
			files:        []string{"b.txt"},
			lines:        2,
			filesChanged: 1,
			linesChanged: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQuerier(contract.NewLocalGitClient(0), dir, nil, tt.paths)

			snap, err := q.Snapshot(ctx, opts)
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.files, snap.Files)

			lines, err := q.LineCount(ctx, snap)
			require.NoError(t, err)
			assert.Equal(t, tt.lines, lines)

			filesChanged, linesChanged, err := q.Churn(ctx, opts)
			require.NoError(t, err)
			assert.Equal(t, tt.filesChanged, filesChanged)
			assert.Equal(t, tt.linesChanged, linesChanged)
		})
	}
}
