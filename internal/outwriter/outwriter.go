// Package outwriter has output and writer logic.
package outwriter

import (
	"io"
	"os"
	"time"

	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteTrends prints a trends report using the configured output format.
func (ow *OutWriter) WriteTrends(result schema.TrendsResult, cfg *contract.Config, duration time.Duration) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteTrendsResults(w, result, cfg, duration)
	}, "Wrote trends report")
}

// WriteBuckets prints bucket boundaries using the configured output format.
func (ow *OutWriter) WriteBuckets(buckets []schema.Bucket, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return WriteBucketsResults(w, buckets, cfg)
	}, "Wrote buckets")
}

// shouldColor reports whether colored labels should be written to w.
// Colors are only used on an interactive terminal.
func shouldColor(w io.Writer, cfg *contract.Config) bool {
	if !cfg.UseColors {
		return false
	}
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
