// Package contract provides interfaces and shared utilities for internal architecture.
package contract

import "context"

// GitClient defines the git operations a trends report needs.
// This allows the core logic to be tested without needing a real git executable.
type GitClient interface {
	// Run executes a git command and returns its standard output.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// RunWithInput executes a git command with input piped to its standard input.
	// It backs batch commands such as `git cat-file --batch`.
	RunWithInput(ctx context.Context, repoPath string, input []byte, args ...string) ([]byte, error)

	// GetRepoRoot returns the absolute path to the root of the Git repository
	// containing the given context path.
	GetRepoRoot(ctx context.Context, contextPath string) (string, error)
}
