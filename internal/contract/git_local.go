package contract

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/huangsam/gitcount/schema"
)

// DefaultGitTimeout bounds a single git invocation.
const DefaultGitTimeout = 60 * time.Second

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct {
	timeout time.Duration
}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
// A non-positive timeout selects DefaultGitTimeout.
func NewLocalGitClient(timeout time.Duration) *LocalGitClient {
	if timeout <= 0 {
		timeout = DefaultGitTimeout
	}
	return &LocalGitClient{timeout: timeout}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(ctx context.Context, repoPath string, args ...string) ([]byte, error) {
	return c.run(ctx, repoPath, nil, args)
}

// RunWithInput implements the GitClient interface.
func (c *LocalGitClient) RunWithInput(ctx context.Context, repoPath string, input []byte, args ...string) ([]byte, error) {
	return c.run(ctx, repoPath, input, args)
}

// GetRepoRoot implements the GitClient interface.
func (c *LocalGitClient) GetRepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

func (c *LocalGitClient) run(ctx context.Context, repoPath string, input []byte, args []string) ([]byte, error) {
	runCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	fullArgs := append([]string{"-C", repoPath, "--no-pager"}, args...)
	cmd := exec.CommandContext(runCtx, "git", fullArgs...)
	if input != nil {
		cmd.Stdin = bytes.NewReader(input)
	}
	out, err := cmd.Output()
	if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		return nil, fmt.Errorf("git %s timed out after %s: %w", subcommand(args), c.timeout, schema.ErrBackendQueryFailed)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// subcommand returns the git subcommand name for error messages.
func subcommand(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
