// Package core has the trends report logic and its entry points.
package core

import (
	"context"
	"time"

	"github.com/huangsam/gitcount/core/period"
	"github.com/huangsam/gitcount/internal/contract"
	"github.com/huangsam/gitcount/internal/outwriter"
	"github.com/huangsam/gitcount/schema"
)

// writer renders every result produced by this package.
var writer = outwriter.NewOutWriter()

// GetTrendsResults runs the trends report and returns its rows along with
// the effective bucketing parameters and the time it took.
func GetTrendsResults(ctx context.Context, cfg *contract.Config, client contract.GitClient) (schema.TrendsResult, time.Duration, error) {
	start := time.Now()
	if !shouldSuppressHeader(ctx) {
		outwriter.LogTrendsHeader(cfg)
	}

	rows, err := RunTrends(ctx, cfg, client, start)
	if err != nil {
		return schema.TrendsResult{}, 0, err
	}
	number, _ := schema.ResolveNumber(cfg.Period, cfg.Number)
	return schema.TrendsResult{
		Period:   cfg.Period,
		FirstDay: cfg.FirstDay,
		Number:   number,
		Rows:     rows,
	}, time.Since(start), nil
}

// ExecuteTrends runs the trends report and writes it in the configured output format.
func ExecuteTrends(ctx context.Context, cfg *contract.Config, client contract.GitClient) error {
	result, duration, err := GetTrendsResults(ctx, cfg, client)
	if err != nil {
		return err
	}
	return writer.WriteTrends(result, cfg, duration)
}

// ExecuteBuckets writes the bucket boundaries a trends report would use
// without querying git.
func ExecuteBuckets(_ context.Context, cfg *contract.Config) error {
	number, err := schema.ResolveNumber(cfg.Period, cfg.Number)
	if err != nil {
		return err
	}
	buckets, err := period.Buckets(cfg.Period, cfg.FirstDay, number, time.Now())
	if err != nil {
		return err
	}
	return writer.WriteBuckets(buckets, cfg)
}
