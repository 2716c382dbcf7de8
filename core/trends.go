package core

import (
	"context"
	"fmt"
	"time"

	"github.com/huangsam/gitcount/core/agg"
	"github.com/huangsam/gitcount/core/period"
	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/schema"
)

// BaseLogOptions derives the options shared by every bucket of a report.
func BaseLogOptions(cfg *contract.Config) agg.LogOptions {
	return agg.LogOptions{
		Author:   cfg.Author,
		All:      !cfg.NoAll,
		NoMerges: !cfg.Merges,
	}
}

// RunTrends computes one report row per bucket, most recent bucket first.
// Queries run strictly in sequence and the first failure aborts the report.
// Cancellation of ctx is honored between buckets.
func RunTrends(ctx context.Context, cfg *contract.Config, client contract.GitClient, today time.Time) ([]schema.ReportRow, error) {
	number, err := schema.ResolveNumber(cfg.Period, cfg.Number)
	if err != nil {
		return nil, err
	}
	bucketer, err := period.NewBucketer(cfg.Period, cfg.FirstDay, number, today)
	if err != nil {
		return nil, err
	}

	querier := agg.NewQuerier(client, cfg.RepoPath, cfg.Range, cfg.Paths)
	base := BaseLogOptions(cfg)

	rows := make([]schema.ReportRow, 0, bucketer.Remaining())
	for bucket, ok := bucketer.Next(); ok; bucket, ok = bucketer.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		row, err := buildRow(ctx, querier, base.WithWindow(bucket), bucket)
		if err != nil {
			return nil, fmt.Errorf("bucket %s to %s: %w", bucket.Since.Format(schema.DateFormat), bucket.Until.Format(schema.DateFormat), err)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// buildRow runs the bucket queries in order: commits, snapshot (files), lines, churn.
// That is five git invocations per bucket.
func buildRow(ctx context.Context, q *agg.Querier, opts agg.LogOptions, bucket schema.Bucket) (schema.ReportRow, error) {
	commits, err := q.CommitCount(ctx, opts)
	if err != nil {
		return schema.ReportRow{}, err
	}
	snap, err := q.Snapshot(ctx, opts)
	if err != nil {
		return schema.ReportRow{}, err
	}
	filesInRepo := len(snap.Files)
	linesInRepo, err := q.LineCount(ctx, snap)
	if err != nil {
		return schema.ReportRow{}, err
	}
	filesChanged, linesChanged, err := q.Churn(ctx, opts)
	if err != nil {
		return schema.ReportRow{}, err
	}

	pctFiles, err := FormatPercent(filesChanged, filesInRepo)
	if err != nil {
		return schema.ReportRow{}, fmt.Errorf("files changed: %w", err)
	}
	pctLines, err := FormatPercent(linesChanged, linesInRepo)
	if err != nil {
		return schema.ReportRow{}, fmt.Errorf("lines changed: %w", err)
	}

	return schema.ReportRow{
		Since:           bucket.Since,
		Until:           bucket.Until,
		Commits:         commits,
		FilesInRepo:     filesInRepo,
		FilesChanged:    filesChanged,
		PctFilesChanged: pctFiles,
		LinesInRepo:     linesInRepo,
		LinesChanged:    linesChanged,
		PctLinesChanged: pctLines,
	}, nil
}

// FormatPercent formats 100*changed/total with two decimals and a trailing %.
// A zero total yields "0.00%" when nothing changed and ErrDivisionByZero otherwise.
// The result can exceed 100% since churn counts every touch of a file or line.
func FormatPercent(changed, total int) (string, error) {
	if total == 0 {
		if changed == 0 {
			return "0.00%", nil
		}
		return "", fmt.Errorf("%w: %d changed against an empty snapshot", schema.ErrDivisionByZero, changed)
	}
	return fmt.Sprintf("%.2f%%", float64(changed)/float64(total)*100), nil
}
