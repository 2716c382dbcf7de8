package agg

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
)

// Querier answers the four per-bucket questions of a trends report by
// running git through a contract.GitClient. Every query is scoped by the
// same revision range and path filter.
type Querier struct {
	client   contract.GitClient
	repoPath string
	revs     []string
	paths    []string
}

// NewQuerier creates a Querier for a repository. Empty revs means all
// history reachable from the defaults git picks; empty paths means the
// whole tree.
func NewQuerier(client contract.GitClient, repoPath string, revs, paths []string) *Querier {
	return &Querier{
		client:   client,
		repoPath: repoPath,
		revs:     revs,
		paths:    paths,
	}
}

// CommitCount returns the number of commits matching the options. Zero is a valid answer.
func (q *Querier) CommitCount(ctx context.Context, opts LogOptions) (int, error) {
	out, err := q.log(ctx, logTemplate{oneline: true}, opts)
	if err != nil {
		return 0, err
	}
	count := 0
	for line := range strings.SplitSeq(string(out), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}

// Snapshot is the tree of the most recent commit matching a set of
// options, scoped by the path filter.
type Snapshot struct {
	Commit string
	Files  []string
}

// Snapshot resolves the most recent commit matching the options and lists
// its files. File and line counts of one bucket share a single Snapshot.
func (q *Querier) Snapshot(ctx context.Context, opts LogOptions) (Snapshot, error) {
	commit, err := q.ResolveCommit(ctx, opts)
	if err != nil {
		return Snapshot{}, err
	}
	files, err := q.listFiles(ctx, commit)
	if err != nil {
		return Snapshot{}, err
	}
	return Snapshot{Commit: commit, Files: files}, nil
}

// RepoFileCount returns the number of tracked files at the most recent
// commit matching the options.
func (q *Querier) RepoFileCount(ctx context.Context, opts LogOptions) (int, error) {
	snap, err := q.Snapshot(ctx, opts)
	if err != nil {
		return 0, err
	}
	return len(snap.Files), nil
}

// RepoLineCount returns the total number of lines across all tracked files
// at the most recent commit matching the options.
func (q *Querier) RepoLineCount(ctx context.Context, opts LogOptions) (int, error) {
	snap, err := q.Snapshot(ctx, opts)
	if err != nil {
		return 0, err
	}
	return q.LineCount(ctx, snap)
}

// LineCount returns the total number of lines across the files of a snapshot.
func (q *Querier) LineCount(ctx context.Context, snap Snapshot) (int, error) {
	if len(snap.Files) == 0 {
		return 0, nil
	}

	var input bytes.Buffer
	for _, f := range snap.Files {
		if strings.Contains(f, "\n") {
			// cat-file --batch reads one object name per line
			contract.LogWarn("Skipping line count", fmt.Errorf("path %q contains a newline", f))
			continue
		}
		input.WriteString(snap.Commit + ":" + f + "\n")
	}
	out, err := q.client.RunWithInput(ctx, q.repoPath, input.Bytes(), "cat-file", "--batch")
	if err != nil {
		return 0, fmt.Errorf("%w: git cat-file: %w", schema.ErrBackendQueryFailed, err)
	}
	return countBatchLines(out)
}

// Churn returns the files changed and lines changed (insertions plus
// deletions) summed over every commit matching the options.
func (q *Querier) Churn(ctx context.Context, opts LogOptions) (filesChanged int, linesChanged int, err error) {
	out, err := q.log(ctx, logTemplate{format: "format:%H", shortstat: true}, opts)
	if err != nil {
		return 0, 0, err
	}
	for line := range strings.SplitSeq(string(out), "\n") {
		// Summary lines are indented; the rest are commit hashes and separators.
		if !strings.HasPrefix(line, " ") {
			continue
		}
		// NoData and Malformed lines do not affect totals.
		if t, ok := ParseStatLine(line).Triple(); ok {
			filesChanged += t.Files
			linesChanged += t.Insertions + t.Deletions
		}
	}
	return filesChanged, linesChanged, nil
}

// ResolveCommit returns the hash of the most recent commit matching the
// options. No match is an error because file and line counts need a
// concrete snapshot.
func (q *Querier) ResolveCommit(ctx context.Context, opts LogOptions) (string, error) {
	out, err := q.log(ctx, logTemplate{reverse: true, maxCount: 1, format: "format:%H"}, opts)
	if err != nil {
		return "", err
	}
	first, _, _ := strings.Cut(string(out), "\n")
	commit := strings.TrimSpace(first)
	if commit == "" {
		return "", fmt.Errorf("%w: no commit satisfies the filter (since %q, until %q)", schema.ErrBackendQueryFailed, opts.Since, opts.Until)
	}
	return commit, nil
}

// logArgs assembles a git log invocation: template options, caller options,
// revisions, then the path filter.
func (q *Querier) logArgs(t logTemplate, opts LogOptions) []string {
	args := []string{"log"}
	args = append(args, t.args()...)
	args = append(args, opts.Args()...)
	args = append(args, q.revs...)
	args = append(args, "--")
	return append(args, q.paths...)
}

func (q *Querier) log(ctx context.Context, t logTemplate, opts LogOptions) ([]byte, error) {
	out, err := q.client.Run(ctx, q.repoPath, q.logArgs(t, opts)...)
	if err != nil {
		return nil, fmt.Errorf("%w: git log: %w", schema.ErrBackendQueryFailed, err)
	}
	return out, nil
}

// Well-known ids of the empty tree, which git resolves without storing it.
const (
	emptyTreeSHA1   = "4b825dc642cb6eb9a060e54bf8d69288fbee4904"
	emptyTreeSHA256 = "6ef19b41225c5369f1c104d45d8d85efa9b057b53b14b4b9b939dd74decc5321"
)

// emptyTreeFor returns the empty tree id in the object format of commit.
func emptyTreeFor(commit string) string {
	if len(commit) == len(emptyTreeSHA256) {
		return emptyTreeSHA256
	}
	return emptyTreeSHA1
}

// listFiles returns the tracked paths at a commit, scoped by the path filter.
// The tree is diffed against the empty tree because diff-tree matches
// pathspecs (globs, magic) exactly like git log, while ls-tree only takes
// literal prefixes.
func (q *Querier) listFiles(ctx context.Context, commit string) ([]string, error) {
	args := []string{"diff-tree", "-r", "-z", "--name-only", "--no-renames", emptyTreeFor(commit), commit, "--"}
	args = append(args, q.paths...)
	out, err := q.client.Run(ctx, q.repoPath, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: git diff-tree: %w", schema.ErrBackendQueryFailed, err)
	}
	var files []string
	for f := range strings.SplitSeq(string(out), "\x00") {
		if f != "" {
			files = append(files, f)
		}
	}
	return files, nil
}

// countBatchLines sums newline characters over the blobs of a
// `git cat-file --batch` response. Missing objects (e.g. submodules) and
// non-blob objects contribute nothing.
func countBatchLines(out []byte) (int, error) {
	total := 0
	for len(out) > 0 {
		header, rest, ok := bytes.Cut(out, []byte("\n"))
		if !ok {
			return 0, fmt.Errorf("%w: truncated cat-file header %q", schema.ErrBackendQueryFailed, header)
		}
		// The object name is echoed as given and may contain spaces.
		if h := string(header); strings.HasSuffix(h, " missing") || strings.HasSuffix(h, " ambiguous") {
			out = rest
			continue
		}
		fields := strings.Fields(string(header))
		if len(fields) != 3 {
			return 0, fmt.Errorf("%w: unexpected cat-file header %q", schema.ErrBackendQueryFailed, header)
		}
		size, err := strconv.Atoi(fields[2])
		if err != nil || size < 0 || size > len(rest) {
			return 0, fmt.Errorf("%w: bad cat-file object size in %q", schema.ErrBackendQueryFailed, header)
		}
		if fields[1] == "blob" {
			total += bytes.Count(rest[:size], []byte("\n"))
		}
		out = rest[size:]
		// Each object is followed by a single LF.
		out = bytes.TrimPrefix(out, []byte("\n"))
	}
	return total, nil
}
